package create_booking

import (
	"fmt"
	"time"

	"github.com/sportplex/SP-BookingService/internal/domain"
	"github.com/sportplex/SP-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ArenaID <= 0 {
		return fmt.Errorf("%w: arenaID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Слоты выровнены по часу
	minute, err := req.StartTime.Minute()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if minute != 0 {
		return fmt.Errorf("%w: startTime must be hour-aligned", ErrInvalidInput)
	}

	// Длительность из закрытого набора {1, 2, 3, 4}
	if !domain.IsAllowedDuration(req.DurationHours) {
		return fmt.Errorf("%w: duration must be between %d and %d hours",
			ErrInvalidDuration, domain.MinBookingDurationHours, domain.MaxBookingDurationHours)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateBookingWindow проверяет, что запрошенное окно целиком лежит
// внутри часов работы арены и, для сегодняшней даты, не начинается в прошлом
func validateBookingWindow(
	arena *domain.Arena,
	bookingDate time.Time,
	startTime types.TimeString,
	durationHours int,
	now time.Time,
) error {
	windowEnd, err := startTime.AddMinutes(durationHours * domain.MinutesPerSlot)
	if err != nil {
		// Окно выходит за полночь
		return fmt.Errorf("%w: window end is out of day range", ErrInvalidBookingWindow)
	}

	if startTime.IsBefore(arena.OpeningTime) {
		return fmt.Errorf("%w: starts before opening time %s", ErrInvalidBookingWindow, arena.OpeningTime)
	}

	if windowEnd.IsAfter(arena.ClosingTime) {
		return fmt.Errorf("%w: ends after closing time %s", ErrInvalidBookingWindow, arena.ClosingTime)
	}

	// Для бронирования на сегодня время начала должно быть в будущем
	if isSameDay(bookingDate, now) && startTime.IsBefore(types.NewTimeString(now)) {
		return fmt.Errorf("%w: start time is in the past", ErrInvalidBookingWindow)
	}

	return nil
}

// countOverlappingBookings подсчитывает количество активных бронирований,
// пересекающихся с запрошенным окном
func countOverlappingBookings(
	startTime types.TimeString,
	durationHours int,
	bookings []*domain.Booking,
) (int, error) {
	count := 0

	for _, booking := range bookings {
		// Пропускаем неактивные бронирования
		if !booking.IsActive() {
			continue
		}

		overlaps, err := domain.Overlaps(
			startTime, durationHours*domain.MinutesPerSlot,
			booking.StartTime, booking.DurationHours*domain.MinutesPerSlot,
		)
		if err != nil {
			// Если не можем вычислить окно бронирования, пропускаем
			continue
		}

		if overlaps {
			count++
		}
	}

	return count, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
