package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a time of day in "HH:MM" format.
// Used for booking start times and arena operating hours, where only
// the time of day matters and timezone handling of time.Time would get in the way.
type TimeString string

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени (ожидается HH:MM)
	ErrInvalidTimeFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time is out of day range")
)

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the raw "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" format.
// "24:00" is accepted as an exclusive end-of-day boundary.
func (t TimeString) Validate() error {
	_, err := t.totalMinutes()
	return err
}

// Hour returns the hour component (0-24).
func (t TimeString) Hour() (int, error) {
	m, err := t.totalMinutes()
	if err != nil {
		return 0, err
	}
	return m / 60, nil
}

// Minute returns the minute component (0-59).
func (t TimeString) Minute() (int, error) {
	m, err := t.totalMinutes()
	if err != nil {
		return 0, err
	}
	return m % 60, nil
}

// IsBefore returns true if t is strictly earlier than other.
// Malformed values compare as "not before".
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.totalMinutes()
	if err != nil {
		return false
	}
	b, err := other.totalMinutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter returns true if t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.totalMinutes()
	if err != nil {
		return false
	}
	b, err := other.totalMinutes()
	if err != nil {
		return false
	}
	return a > b
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Fails with ErrTimeOutOfRange if the result would pass midnight ("24:00" itself is allowed).
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.totalMinutes()
	if err != nil {
		return "", err
	}

	m += minutes
	if m < 0 || m > minutesPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// totalMinutes парсит значение в минуты от начала суток
func (t TimeString) totalMinutes() (int, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	if hh < 0 || mm < 0 || mm > 59 || hh > 24 || (hh == 24 && mm != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	return hh*60 + mm, nil
}

// Value implements driver.Valuer for database writes.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner for database reads.
// Postgres TIME columns come back either as strings or time.Time depending on the driver.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		// TIME columns are read back as "HH:MM:SS", cut the seconds
		if len(v) > 5 {
			v = v[:5]
		}
		*t = TimeString(v)
		return t.Validate()
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeFormat, src)
	}
}
