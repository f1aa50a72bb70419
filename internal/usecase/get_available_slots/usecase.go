package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportplex/SP-BookingService/internal/domain"
	arenaRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/arena"
)

// UseCase use case для получения доступных слотов арены
type UseCase struct {
	bookingRepo BookingRepository
	arenaRepo   ArenaRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	arenaRepo ArenaRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		arenaRepo:   arenaRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: arena=%d, date=%s",
		req.ArenaID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем арену
	arena, err := uc.arenaRepo.GetByID(ctx, req.ArenaID)
	if err != nil {
		if errors.Is(err, arenaRepo.ErrArenaNotFound) {
			uc.logger.Warn("GetAvailableSlots: arena id=%d not found", req.ArenaID)
			return nil, ErrArenaNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get arena id=%d: %v", req.ArenaID, err)
		return nil, fmt.Errorf("%w: failed to get arena: %v", ErrInternal, err)
	}

	// 3. Генерируем все часовые слоты рабочего дня
	allSlots, err := generateTimeSlots(arena.OpeningTime, arena.ClosingTime)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots for arena id=%d: %v", req.ArenaID, err)
		return nil, err
	}

	// 4. Получаем активные бронирования на эту дату
	filter := domain.ArenaBookingsFilter{
		ArenaID:         req.ArenaID,
		Date:            &req.Date,
		IncludeInactive: false, // Отменённые бронирования слоты не занимают
	}

	bookings, err := uc.bookingRepo.GetByArenaAndDate(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Фильтруем занятые слоты
	freeSlots := filterAvailableSlots(allSlots, bookings)

	slots := make([]Slot, len(freeSlots))
	for i, start := range freeSlots {
		slots[i] = Slot{
			StartTime:       start,
			DurationMinutes: domain.MinutesPerSlot,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for arena=%d, date=%s",
		len(slots), len(allSlots), req.ArenaID, req.Date.Format(domain.DateFormat))

	return &Response{
		ArenaID: req.ArenaID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ArenaID <= 0 {
		return fmt.Errorf("%w: arenaID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
