package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 15, 14, 5, 33, 0, time.UTC))
	assert.Equal(t, "14:05", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "06:00"},
		{name: "valid evening", input: "21:30"},
		{name: "midnight", input: "00:00"},
		{name: "end of day boundary", input: "24:00"},
		{name: "minutes past midnight on 24", input: "24:30", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minutes out of range", input: "10:60", wantErr: true},
		{name: "missing minutes", input: "10", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_HourMinute(t *testing.T) {
	ts := TimeString("18:45")

	hour, err := ts.Hour()
	require.NoError(t, err)
	assert.Equal(t, 18, hour)

	minute, err := ts.Minute()
	require.NoError(t, err)
	assert.Equal(t, 45, minute)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("22:00").IsAfter("06:00"))
	assert.False(t, TimeString("06:00").IsAfter("06:00"))

	// Некорректные значения не считаются ни раньше, ни позже
	assert.False(t, TimeString("bad").IsBefore("10:00"))
	assert.False(t, TimeString("bad").IsAfter("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	result, err := ts.AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, "12:00", result.String())

	// Граница суток включительно
	result, err = TimeString("22:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, "24:00", result.String())

	// Переход через полночь запрещен
	_, err = TimeString("23:00").AddMinutes(120)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// TIME колонки приходят с секундами
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, "09:30", ts.String())

	require.NoError(t, ts.Scan([]byte("14:00:00")))
	assert.Equal(t, "14:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 7, 15, 0, 0, time.UTC)))
	assert.Equal(t, "07:15", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	_, err = TimeString("99:99").Value()
	assert.Error(t, err)
}
