package get_available_slots

import (
	"fmt"

	"github.com/sportplex/SP-BookingService/internal/domain"
	"github.com/sportplex/SP-BookingService/pkg/types"
)

// generateTimeSlots генерирует все часовые слоты в интервале [open, close)
// Слот входит в результат, если он целиком помещается до закрытия:
// для open=06:00, close=22:00 получается 16 слотов, от 06:00 до 21:00
//
// Детерминированная чистая функция: одинаковый вход дает одинаковый результат
func generateTimeSlots(open, close types.TimeString) ([]types.TimeString, error) {
	if err := open.Validate(); err != nil {
		return nil, fmt.Errorf("%w: opening time: %v", ErrInvalidHoursRange, err)
	}
	if err := close.Validate(); err != nil {
		return nil, fmt.Errorf("%w: closing time: %v", ErrInvalidHoursRange, err)
	}

	if !open.IsBefore(close) {
		return nil, fmt.Errorf("%w: open=%s close=%s", ErrInvalidHoursRange, open, close)
	}

	allSlots := make([]types.TimeString, 0)
	currentSlot := open

	for currentSlot.IsBefore(close) {
		slotEnd, err := currentSlot.AddMinutes(domain.MinutesPerSlot)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if slotEnd.IsAfter(close) {
			break
		}

		allSlots = append(allSlots, currentSlot)

		currentSlot, err = currentSlot.AddMinutes(domain.MinutesPerSlot)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	return allSlots, nil
}

// filterAvailableSlots убирает слоты, пересекающиеся с активными бронированиями
// Хронологический порядок слотов сохраняется
func filterAvailableSlots(slots []types.TimeString, bookings []*domain.Booking) []types.TimeString {
	available := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		if !isSlotReserved(slot, bookings) {
			available = append(available, slot)
		}
	}

	return available
}

// isSlotReserved проверяет, пересекается ли слот с каким-либо активным бронированием
// Бронирование длится DurationHours часов и занимает все пересекаемые слоты
func isSlotReserved(slot types.TimeString, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		// Пропускаем неактивные бронирования
		if !booking.IsActive() {
			continue
		}

		overlaps, err := domain.Overlaps(
			slot, domain.MinutesPerSlot,
			booking.StartTime, booking.DurationHours*domain.MinutesPerSlot,
		)
		if err != nil {
			// Некорректное бронирование не должно блокировать весь день
			continue
		}

		if overlaps {
			return true
		}
	}

	return false
}
