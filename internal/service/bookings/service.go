package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportplex/SP-BookingService/internal/domain"
	bookingRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/booking"
	"github.com/sportplex/SP-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями
// Создание новых бронирований живёт в usecase create_booking
type Service struct {
	bookingRepo    BookingRepository
	identityClient IdentityClient
	logger         Logger
}

// NewService создает новый сервис бронирований
func NewService(bookingRepo BookingRepository, identityClient IdentityClient, logger Logger) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// GetByID возвращает бронирование по ID
// Доступ разрешён владельцу бронирования и администратору
func (s *Service) GetByID(ctx context.Context, req *models.GetBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("GetBooking: id=%d, requestor=%d", req.BookingID, req.RequestorID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if err := s.checkAccess(ctx, booking, req.RequestorID); err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings возвращает бронирования пользователя с опциональным фильтром по статусу
// Пользователь видит только свои бронирования, администратор - любые
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: user=%d, requestor=%d", req.UserID, req.RequestorID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		st, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		status = &st
	}

	if req.UserID != req.RequestorID {
		if err := s.requireAdmin(ctx, req.RequestorID); err != nil {
			return nil, err
		}
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserBookings: failed to get bookings for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Операция компенсирующая: запись остаётся в истории со статусом cancelled,
// а занятый слот снова становится доступным для новых бронирований
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("CancelBooking: id=%d, requestor=%d", req.BookingID, req.RequestorID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	// 2. Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Проверяем права: владелец или администратор
	if err := s.checkAccess(ctx, booking, req.RequestorID); err != nil {
		return nil, err
	}

	// 4. Отменить можно только предстоящее бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("CancelBooking: booking id=%d has status %s and cannot be cancelled",
			req.BookingID, booking.Status)
		return nil, fmt.Errorf("%w: booking has status %s", ErrCannotCancel, booking.Status)
	}

	// 5. Переводим в cancelled с фиксацией причины и времени
	if err := s.bookingRepo.Cancel(ctx, req.BookingID, req.Reason); err != nil {
		s.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	// 6. Перечитываем запись для актуальных cancelled_at и updated_at
	cancelled, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		s.logger.Error("CancelBooking: failed to reload booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
	}

	s.logger.Info("CancelBooking: successfully cancelled booking id=%d", req.BookingID)

	return models.FromDomainBooking(cancelled), nil
}

// Complete переводит бронирование в статус completed
// Операция доступна только администратору
func (s *Service) Complete(ctx context.Context, req *models.CompleteBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("CompleteBooking: id=%d, requestor=%d", req.BookingID, req.RequestorID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if err := s.requireAdmin(ctx, req.RequestorID); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CompleteBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// Завершить можно только предстоящее бронирование
	if booking.Status != domain.StatusUpcoming {
		return nil, fmt.Errorf("%w: booking has status %s", ErrCannotCancel, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, req.BookingID, domain.StatusCompleted); err != nil {
		s.logger.Error("CompleteBooking: failed to update status for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	completed, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		s.logger.Error("CompleteBooking: failed to reload booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(completed), nil
}

// checkAccess проверяет, что requestor - владелец бронирования или администратор
func (s *Service) checkAccess(ctx context.Context, booking *domain.Booking, requestorID int64) error {
	if booking.UserID == requestorID {
		return nil
	}
	return s.requireAdmin(ctx, requestorID)
}

// requireAdmin проверяет, что requestor имеет роль ADMIN
func (s *Service) requireAdmin(ctx context.Context, requestorID int64) error {
	principal, err := s.identityClient.GetPrincipal(ctx, requestorID)
	if err != nil {
		s.logger.Error("failed to resolve principal id=%d: %v", requestorID, err)
		return fmt.Errorf("%w: failed to resolve principal: %v", ErrInternal, err)
	}
	if !principal.IsAdmin() {
		s.logger.Warn("access denied for principal id=%d", requestorID)
		return ErrAccessDenied
	}
	return nil
}
