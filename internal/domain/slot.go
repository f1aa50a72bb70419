package domain

import "github.com/sportplex/SP-BookingService/pkg/types"

// AvailableSlot represents an hour-aligned start time open for booking.
// Derived from an arena's operating hours and its active bookings, never stored.
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// Overlaps reports whether two time windows actually intersect.
// Windows that merely touch (one ends exactly where the other starts) do NOT overlap.
func Overlaps(startA types.TimeString, minutesA int, startB types.TimeString, minutesB int) (bool, error) {
	endA, err := startA.AddMinutes(minutesA)
	if err != nil {
		return false, err
	}
	endB, err := startB.AddMinutes(minutesB)
	if err != nil {
		return false, err
	}

	// Строгие неравенства: граничащие интервалы не считаются пересечением
	return startA.IsBefore(endB) && endA.IsAfter(startB), nil
}
