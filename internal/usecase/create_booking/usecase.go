package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sportplex/SP-BookingService/internal/domain"
	arenaRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/arena"
	identityClient "github.com/sportplex/SP-BookingService/internal/integrations/identityservice"
	"github.com/sportplex/SP-BookingService/pkg/txmanager"
)

// UseCase use case для создания бронирования арены
type UseCase struct {
	bookingRepo    BookingRepository
	arenaRepo      ArenaRepository
	identityClient IdentityClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	arenaRepo ArenaRepository,
	identityClient IdentityClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		arenaRepo:      arenaRepo,
		identityClient: identityClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности слота и запись выполняются в одной сериализуемой
// транзакции с блокировкой строк - два конкурентных запроса на одно окно
// не могут закоммититься оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, arena=%d, date=%s, time=%s, hours=%d",
		req.UserID, req.ArenaID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours)

	// 1. Проверка аутентификации: без принципала запрос не обрабатывается
	if req.UserID <= 0 {
		uc.logger.Warn("CreateBooking: unauthenticated request for arena=%d", req.ArenaID)
		return nil, ErrAuthenticationRequired
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Резолвим принципала через IdentityService
	principal, err := uc.identityClient.GetPrincipal(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, identityClient.ErrPrincipalNotFound) {
			uc.logger.Warn("CreateBooking: principal id=%d not found", req.UserID)
			return nil, ErrAuthenticationRequired
		}
		uc.logger.Error("CreateBooking: failed to resolve principal id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to resolve principal: %v", ErrInternal, err)
	}

	// 5. Получаем арену
	arena, err := uc.arenaRepo.GetByID(ctx, req.ArenaID)
	if err != nil {
		if errors.Is(err, arenaRepo.ErrArenaNotFound) {
			uc.logger.Warn("CreateBooking: arena id=%d not found", req.ArenaID)
			return nil, ErrArenaNotFound
		}
		uc.logger.Error("CreateBooking: failed to get arena id=%d: %v", req.ArenaID, err)
		return nil, fmt.Errorf("%w: failed to get arena: %v", ErrInternal, err)
	}

	// 6. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 7. Валидация окна бронирования относительно часов работы
	if err := validateBookingWindow(arena, req.Date, req.StartTime, req.DurationHours, now); err != nil {
		uc.logger.Warn("CreateBooking: booking window validation failed: %v", err)
		return nil, err
	}

	// 8. Расчет стоимости: почасовая ставка × количество часов
	// Целочисленная арифметика в минорных единицах, без плавающей точки
	totalPrice := arena.HourlyRate.MulInt(req.DurationHours)

	// Переменная для хранения результата
	var result *domain.Booking

	// 9. Проверка доступности и запись - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Получаем все активные бронирования арены на эту дату с блокировкой (FOR UPDATE)
		filter := domain.ArenaBookingsFilter{
			ArenaID:         req.ArenaID,
			Date:            &req.Date,
			IncludeInactive: false, // Только активные бронирования
		}

		bookings, err := uc.bookingRepo.GetByArenaAndDate(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 9.2. Проверяем отсутствие пересечений
		// Арена сдается целиком: любое пересечение делает окно недоступным
		overlappingCount, err := countOverlappingBookings(req.StartTime, req.DurationHours, bookings)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to count overlapping bookings: %v", ErrInternal, err)
		}

		if overlappingCount > 0 {
			uc.logger.Warn("CreateBooking: slot not available, %d overlapping bookings", overlappingCount)
			return ErrSlotUnavailable
		}

		// 9.3. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			Reference:     uuid.NewString(),
			UserID:        req.UserID,
			ArenaID:       req.ArenaID,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			DurationHours: req.DurationHours,
			TotalPrice:    totalPrice,
			Status:        domain.StatusUpcoming,
			// Денормализация данных арены и принципала
			ArenaName: arena.Name,
			UserName:  &principal.Name,
			UserEmail: &principal.Email,
		}

		// 9.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Таймаут персистентности: транзакция откачена целиком
		if errors.Is(err, txmanager.ErrTimeout) {
			uc.logger.Error("CreateBooking: persistence timeout for user=%d, arena=%d", req.UserID, req.ArenaID)
			return nil, fmt.Errorf("%w: %v", ErrPersistenceTimeout, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s total=%s",
		result.ID, result.Reference, result.TotalPrice)

	// Конвертируем в response
	return &Response{
		ID:            result.ID,
		Reference:     result.Reference,
		UserID:        result.UserID,
		ArenaID:       result.ArenaID,
		BookingDate:   result.BookingDate,
		StartTime:     result.StartTime,
		DurationHours: result.DurationHours,
		TotalPrice:    result.TotalPrice,
		Status:        string(result.Status),
		ArenaName:     result.ArenaName,
		UserName:      result.UserName,
		UserEmail:     result.UserEmail,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
