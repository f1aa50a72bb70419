package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportplex/SP-BookingService/pkg/types"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		startA   string
		minutesA int
		startB   string
		minutesB int
		want     bool
	}{
		{name: "identical windows", startA: "10:00", minutesA: 60, startB: "10:00", minutesB: 60, want: true},
		{name: "partial overlap", startA: "10:00", minutesA: 120, startB: "11:00", minutesB: 120, want: true},
		{name: "contained window", startA: "10:00", minutesA: 240, startB: "11:00", minutesB: 60, want: true},
		{name: "touching windows do not overlap", startA: "10:00", minutesA: 60, startB: "11:00", minutesB: 60, want: false},
		{name: "disjoint windows", startA: "06:00", minutesA: 60, startB: "20:00", minutesB: 60, want: false},
		{name: "symmetric", startA: "11:00", minutesA: 120, startB: "10:00", minutesB: 120, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Overlaps(types.TimeString(tt.startA), tt.minutesA, types.TimeString(tt.startB), tt.minutesB)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlaps_InvalidWindow(t *testing.T) {
	// Окно за пределами суток не может быть корректно сравнено
	_, err := Overlaps(types.TimeString("23:00"), 120, types.TimeString("10:00"), 60)
	assert.Error(t, err)
}

func TestBooking_EndTime(t *testing.T) {
	b := &Booking{StartTime: "10:00", DurationHours: 2}

	end, err := b.EndTime()
	require.NoError(t, err)
	assert.Equal(t, "12:00", end.String())
}

func TestBooking_Lifecycle(t *testing.T) {
	upcoming := &Booking{Status: StatusUpcoming}
	assert.True(t, upcoming.IsActive())
	assert.True(t, upcoming.CanBeCancelled())
	assert.False(t, upcoming.IsCancelled())

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
	assert.False(t, cancelled.CanBeCancelled())
	assert.True(t, cancelled.IsCancelled())

	completed := &Booking{Status: StatusCompleted}
	assert.False(t, completed.CanBeCancelled())
}

func TestProgram_SpotsLeft(t *testing.T) {
	assert.Equal(t, 7, (&Program{Capacity: 15, EnrolledCount: 8}).SpotsLeft())
	assert.Equal(t, 0, (&Program{Capacity: 15, EnrolledCount: 15}).SpotsLeft())
	assert.Equal(t, 0, (&Program{Capacity: 15, EnrolledCount: 20}).SpotsLeft())
	assert.True(t, (&Program{Capacity: 15, EnrolledCount: 15}).IsFull())
	assert.False(t, (&Program{Capacity: 15, EnrolledCount: 14}).IsFull())
}

func TestArena_HasValidHours(t *testing.T) {
	assert.True(t, (&Arena{OpeningTime: "06:00", ClosingTime: "22:00"}).HasValidHours())
	assert.False(t, (&Arena{OpeningTime: "22:00", ClosingTime: "06:00"}).HasValidHours())
	assert.False(t, (&Arena{OpeningTime: "10:00", ClosingTime: "10:00"}).HasValidHours())
	assert.False(t, (&Arena{}).HasValidHours())
}
