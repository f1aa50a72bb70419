package enroll_program

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sportplex/SP-BookingService/internal/domain"
	enrollmentRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/enrollment"
	programRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/program"
	identityClient "github.com/sportplex/SP-BookingService/internal/integrations/identityservice"
	"github.com/sportplex/SP-BookingService/pkg/txmanager"
)

// UseCase use case для зачисления в коучинговую программу
type UseCase struct {
	programRepo    ProgramRepository
	enrollmentRepo EnrollmentRepository
	identityClient IdentityClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	programRepo ProgramRepository,
	enrollmentRepo EnrollmentRepository,
	identityClient IdentityClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		programRepo:    programRepo,
		enrollmentRepo: enrollmentRepo,
		identityClient: identityClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case зачисления
// Инвариант enrolled_count <= capacity держится на guarded UPDATE внутри
// сериализуемой транзакции: при N конкурентных запросах на C свободных мест
// успешными будут ровно C
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EnrollProgram: user=%d, program=%d", req.UserID, req.ProgramID)

	// 1. Проверка аутентификации: без принципала запрос не обрабатывается
	if req.UserID <= 0 {
		uc.logger.Warn("EnrollProgram: unauthenticated request for program=%d", req.ProgramID)
		return nil, ErrAuthenticationRequired
	}

	// 2. Валидация входных данных
	if req.ProgramID <= 0 {
		uc.logger.Warn("EnrollProgram: invalid programID=%d", req.ProgramID)
		return nil, fmt.Errorf("%w: programID must be positive", ErrInvalidInput)
	}

	// 3. Резолвим принципала через IdentityService
	principal, err := uc.identityClient.GetPrincipal(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, identityClient.ErrPrincipalNotFound) {
			uc.logger.Warn("EnrollProgram: principal id=%d not found", req.UserID)
			return nil, ErrAuthenticationRequired
		}
		uc.logger.Error("EnrollProgram: failed to resolve principal id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to resolve principal: %v", ErrInternal, err)
	}

	// Переменные для хранения результата
	var (
		result    *domain.Enrollment
		spotsLeft int
	)

	// 4. Проверка дубликата, занятие места и запись - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем программу с блокировкой (FOR UPDATE)
		program, err := uc.programRepo.GetByID(txCtx, req.ProgramID)
		if err != nil {
			if errors.Is(err, programRepo.ErrProgramNotFound) {
				uc.logger.Warn("EnrollProgram: program id=%d not found", req.ProgramID)
				return ErrProgramNotFound
			}
			uc.logger.Error("EnrollProgram: failed to get program id=%d: %v", req.ProgramID, err)
			return fmt.Errorf("%w: failed to get program: %v", ErrInternal, err)
		}

		// 4.2. Проверяем повторное зачисление
		_, err = uc.enrollmentRepo.GetByProgramAndUser(txCtx, req.ProgramID, req.UserID)
		if err == nil {
			uc.logger.Warn("EnrollProgram: user=%d already enrolled in program=%d", req.UserID, req.ProgramID)
			return ErrAlreadyEnrolled
		}
		if !errors.Is(err, enrollmentRepo.ErrEnrollmentNotFound) {
			uc.logger.Error("EnrollProgram: failed to check existing enrollment: %v", err)
			return fmt.Errorf("%w: failed to check existing enrollment: %v", ErrInternal, err)
		}

		// 4.3. Атомарно занимаем место: проверка и инкремент одним шагом
		if err := uc.programRepo.IncrementEnrolled(txCtx, req.ProgramID); err != nil {
			if errors.Is(err, programRepo.ErrCapacityExceeded) {
				uc.logger.Warn("EnrollProgram: program id=%d is full (%d/%d)",
					req.ProgramID, program.EnrolledCount, program.Capacity)
				return ErrProgramFull
			}
			if errors.Is(err, programRepo.ErrProgramNotFound) {
				return ErrProgramNotFound
			}
			uc.logger.Error("EnrollProgram: failed to increment enrolled count: %v", err)
			return fmt.Errorf("%w: failed to increment enrolled count: %v", ErrInternal, err)
		}

		// После инкремента осталось на одно место меньше
		spotsLeft = program.Capacity - program.EnrolledCount - 1
		if spotsLeft < 0 {
			spotsLeft = 0
		}

		// 4.4. Создаем зачисление с денормализацией данных программы
		enrollment := &domain.Enrollment{
			Reference:    uuid.NewString(),
			ProgramID:    req.ProgramID,
			UserID:       principal.ID,
			Status:       domain.EnrollmentActive,
			ProgramTitle: program.Title,
			Price:        program.Price,
			EnrolledAt:   uc.timeProvider.Now(),
		}

		created, err := uc.enrollmentRepo.Create(txCtx, enrollment)
		if err != nil {
			uc.logger.Error("EnrollProgram: failed to create enrollment: %v", err)
			return fmt.Errorf("%w: failed to create enrollment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Таймаут персистентности: инкремент счётчика откачен вместе с транзакцией
		if errors.Is(err, txmanager.ErrTimeout) {
			uc.logger.Error("EnrollProgram: persistence timeout for user=%d, program=%d", req.UserID, req.ProgramID)
			return nil, fmt.Errorf("%w: %v", ErrPersistenceTimeout, err)
		}
		return nil, err
	}

	uc.logger.Info("EnrollProgram: successfully enrolled user=%d in program=%d, enrollment id=%d, spots left=%d",
		req.UserID, req.ProgramID, result.ID, spotsLeft)

	// Конвертируем в response
	return &Response{
		ID:           result.ID,
		Reference:    result.Reference,
		ProgramID:    result.ProgramID,
		UserID:       result.UserID,
		Status:       string(result.Status),
		Price:        result.Price,
		ProgramTitle: result.ProgramTitle,
		SpotsLeft:    spotsLeft,
		EnrolledAt:   result.EnrolledAt,
		CreatedAt:    result.CreatedAt,
	}, nil
}
