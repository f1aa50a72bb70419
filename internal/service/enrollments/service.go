package enrollments

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportplex/SP-BookingService/internal/domain"
	enrollmentRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/enrollment"
	"github.com/sportplex/SP-BookingService/internal/service/enrollments/models"
	"github.com/sportplex/SP-BookingService/pkg/txmanager"
)

// Service сервис для работы с существующими зачислениями
// Новые зачисления создаются в usecase enroll_program
type Service struct {
	enrollmentRepo EnrollmentRepository
	programRepo    ProgramRepository
	identityClient IdentityClient
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый сервис зачислений
func NewService(
	enrollmentRepo EnrollmentRepository,
	programRepo ProgramRepository,
	identityClient IdentityClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		enrollmentRepo: enrollmentRepo,
		programRepo:    programRepo,
		identityClient: identityClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// GetUserEnrollments возвращает зачисления пользователя с опциональным фильтром по статусу
// Пользователь видит только свои зачисления, администратор - любые
func (s *Service) GetUserEnrollments(ctx context.Context, req *models.GetUserEnrollmentsRequest) (*models.EnrollmentListResponse, error) {
	s.logger.Info("GetUserEnrollments: user=%d, requestor=%d", req.UserID, req.RequestorID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	var status *domain.EnrollmentStatus
	if req.Status != nil {
		st, err := models.ToDomainEnrollmentStatus(*req.Status)
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

	enrollments, err := s.enrollmentRepo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserEnrollments: failed to get enrollments for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get enrollments: %v", ErrInternal, err)
	}

	return models.FromDomainEnrollmentList(enrollments), nil
}

// Cancel отменяет зачисление и освобождает занятое место в программе.
// Смена статуса и декремент enrolled_count коммитятся одной транзакцией -
// счётчик не может разойтись с фактическим числом активных зачислений
func (s *Service) Cancel(ctx context.Context, req *models.CancelEnrollmentRequest) (*models.EnrollmentResponse, error) {
	s.logger.Info("CancelEnrollment: id=%d, requestor=%d", req.EnrollmentID, req.RequestorID)

	// 1. Валидация входных данных
	if req.EnrollmentID <= 0 {
		return nil, fmt.Errorf("%w: enrollmentID must be positive", ErrInvalidInput)
	}

	// 2. Получаем зачисление
	enrollment, err := s.enrollmentRepo.GetByID(ctx, req.EnrollmentID)
	if err != nil {
		if errors.Is(err, enrollmentRepo.ErrEnrollmentNotFound) {
			s.logger.Warn("CancelEnrollment: enrollment id=%d not found", req.EnrollmentID)
			return nil, ErrEnrollmentNotFound
		}
		s.logger.Error("CancelEnrollment: failed to get enrollment id=%d: %v", req.EnrollmentID, err)
		return nil, fmt.Errorf("%w: failed to get enrollment: %v", ErrInternal, err)
	}

	// 3. Проверяем права: владелец или администратор
	if err := s.checkAccess(ctx, enrollment, req.RequestorID); err != nil {
		return nil, err
	}

	// 4. Отменить можно только активное зачисление
	if !enrollment.CanBeCancelled() {
		s.logger.Warn("CancelEnrollment: enrollment id=%d has status %s and cannot be cancelled",
			req.EnrollmentID, enrollment.Status)
		return nil, fmt.Errorf("%w: enrollment has status %s", ErrCannotCancel, enrollment.Status)
	}

	// 5. Смена статуса и освобождение места - в одной транзакции
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.enrollmentRepo.UpdateStatus(txCtx, req.EnrollmentID, domain.EnrollmentCancelled); err != nil {
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
		if err := s.programRepo.DecrementEnrolled(txCtx, enrollment.ProgramID); err != nil {
			return fmt.Errorf("%w: failed to release program spot: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrTimeout) {
			s.logger.Error("CancelEnrollment: persistence timeout for enrollment id=%d", req.EnrollmentID)
			return nil, fmt.Errorf("%w: %v", ErrPersistenceTimeout, err)
		}
		s.logger.Error("CancelEnrollment: failed to cancel enrollment id=%d: %v", req.EnrollmentID, err)
		return nil, err
	}

	// 6. Перечитываем запись для актуального updated_at
	cancelled, err := s.enrollmentRepo.GetByID(ctx, req.EnrollmentID)
	if err != nil {
		s.logger.Error("CancelEnrollment: failed to reload enrollment id=%d: %v", req.EnrollmentID, err)
		return nil, fmt.Errorf("%w: failed to reload enrollment: %v", ErrInternal, err)
	}

	s.logger.Info("CancelEnrollment: successfully cancelled enrollment id=%d", req.EnrollmentID)

	return models.FromDomainEnrollment(cancelled), nil
}

// Complete переводит зачисление в статус completed
// Операция доступна только администратору. Счётчик enrolled_count при этом
// не уменьшается: завершённый участник своё место в наборе уже использовал
func (s *Service) Complete(ctx context.Context, req *models.CompleteEnrollmentRequest) (*models.EnrollmentResponse, error) {
	s.logger.Info("CompleteEnrollment: id=%d, requestor=%d", req.EnrollmentID, req.RequestorID)

	if req.EnrollmentID <= 0 {
		return nil, fmt.Errorf("%w: enrollmentID must be positive", ErrInvalidInput)
	}

	if err := s.requireAdmin(ctx, req.RequestorID); err != nil {
		return nil, err
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, req.EnrollmentID)
	if err != nil {
		if errors.Is(err, enrollmentRepo.ErrEnrollmentNotFound) {
			s.logger.Warn("CompleteEnrollment: enrollment id=%d not found", req.EnrollmentID)
			return nil, ErrEnrollmentNotFound
		}
		s.logger.Error("CompleteEnrollment: failed to get enrollment id=%d: %v", req.EnrollmentID, err)
		return nil, fmt.Errorf("%w: failed to get enrollment: %v", ErrInternal, err)
	}

	// Завершить можно только активное зачисление
	if !enrollment.IsActive() {
		if enrollment.Status == domain.EnrollmentCompleted {
			return nil, ErrAlreadyCompleted
		}
		return nil, fmt.Errorf("%w: enrollment has status %s", ErrCannotCancel, enrollment.Status)
	}

	if err := s.enrollmentRepo.UpdateStatus(ctx, req.EnrollmentID, domain.EnrollmentCompleted); err != nil {
		s.logger.Error("CompleteEnrollment: failed to update status for enrollment id=%d: %v", req.EnrollmentID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	completed, err := s.enrollmentRepo.GetByID(ctx, req.EnrollmentID)
	if err != nil {
		s.logger.Error("CompleteEnrollment: failed to reload enrollment id=%d: %v", req.EnrollmentID, err)
		return nil, fmt.Errorf("%w: failed to reload enrollment: %v", ErrInternal, err)
	}

	s.logger.Info("CompleteEnrollment: successfully completed enrollment id=%d", req.EnrollmentID)

	return models.FromDomainEnrollment(completed), nil
}

// checkAccess проверяет, что requestor - владелец зачисления или администратор
func (s *Service) checkAccess(ctx context.Context, enrollment *domain.Enrollment, requestorID int64) error {
	if enrollment.UserID == requestorID {
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
