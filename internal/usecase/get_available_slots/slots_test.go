package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportplex/SP-BookingService/internal/domain"
	"github.com/sportplex/SP-BookingService/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	t.Run("full working day", func(t *testing.T) {
		slots, err := generateTimeSlots("06:00", "22:00")
		require.NoError(t, err)

		// 16 часовых слотов: 06:00 ... 21:00
		require.Len(t, slots, 16)
		assert.Equal(t, types.TimeString("06:00"), slots[0])
		assert.Equal(t, types.TimeString("21:00"), slots[len(slots)-1])
	})

	t.Run("short day", func(t *testing.T) {
		slots, err := generateTimeSlots("09:00", "12:00")
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, slots)
	})

	t.Run("closing at end of day", func(t *testing.T) {
		slots, err := generateTimeSlots("22:00", "24:00")
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"22:00", "23:00"}, slots)
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := generateTimeSlots("06:00", "22:00")
		require.NoError(t, err)
		second, err := generateTimeSlots("06:00", "22:00")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("open equals close", func(t *testing.T) {
		_, err := generateTimeSlots("10:00", "10:00")
		assert.ErrorIs(t, err, ErrInvalidHoursRange)
	})

	t.Run("open after close", func(t *testing.T) {
		_, err := generateTimeSlots("22:00", "06:00")
		assert.ErrorIs(t, err, ErrInvalidHoursRange)
	})

	t.Run("malformed opening time", func(t *testing.T) {
		_, err := generateTimeSlots("garbage", "22:00")
		assert.ErrorIs(t, err, ErrInvalidHoursRange)
	})
}

func TestFilterAvailableSlots(t *testing.T) {
	slots, err := generateTimeSlots("06:00", "22:00")
	require.NoError(t, err)

	t.Run("no bookings keeps all slots", func(t *testing.T) {
		available := filterAvailableSlots(slots, nil)
		assert.Equal(t, slots, available)
	})

	t.Run("multi-hour booking removes all covered slots", func(t *testing.T) {
		bookings := []*domain.Booking{
			{StartTime: "10:00", DurationHours: 3, Status: domain.StatusUpcoming},
		}

		available := filterAvailableSlots(slots, bookings)
		require.Len(t, available, 13)

		reserved := map[types.TimeString]bool{"10:00": true, "11:00": true, "12:00": true}
		for _, slot := range available {
			assert.False(t, reserved[slot], "slot %s must be filtered out", slot)
		}

		// Граничные слоты остаются: интервалы соприкасаются, но не пересекаются
		assert.Contains(t, available, types.TimeString("09:00"))
		assert.Contains(t, available, types.TimeString("13:00"))
	})

	t.Run("cancelled booking does not reserve slots", func(t *testing.T) {
		bookings := []*domain.Booking{
			{StartTime: "10:00", DurationHours: 2, Status: domain.StatusCancelled},
		}

		available := filterAvailableSlots(slots, bookings)
		assert.Equal(t, slots, available)
	})

	t.Run("chronological order is preserved", func(t *testing.T) {
		bookings := []*domain.Booking{
			{StartTime: "08:00", DurationHours: 1, Status: domain.StatusUpcoming},
			{StartTime: "15:00", DurationHours: 1, Status: domain.StatusUpcoming},
		}

		available := filterAvailableSlots(slots, bookings)
		for i := 1; i < len(available); i++ {
			assert.True(t, available[i-1].IsBefore(available[i]))
		}
	})
}
