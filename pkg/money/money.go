package money

import (
	"fmt"
)

// Money represents a currency amount in integer minor units (cents).
// All booking prices are whole-number rates multiplied by whole-hour durations,
// so integer arithmetic is exact and floating point is never involved.
type Money int64

// FromMajor converts whole currency units to Money (50 -> 5000 cents).
func FromMajor(units int64) Money {
	return Money(units * 100)
}

// MulInt returns the amount multiplied by a whole factor.
// Используется для расчёта стоимости почасового бронирования: ставка × часы.
func (m Money) MulInt(n int) Money {
	return m * Money(n)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// Minor returns the raw minor-unit value.
func (m Money) Minor() int64 {
	return int64(m)
}

// String formats the amount as "major.minor", e.g. 5000 -> "50.00".
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
