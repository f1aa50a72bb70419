package enroll_program

import (
	"context"
	"time"

	"github.com/sportplex/SP-BookingService/internal/domain"
)

// ProgramRepository интерфейс репозитория программ
type ProgramRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Program, error)
	// IncrementEnrolled атомарно занимает место: проверка capacity и инкремент
	// выполняются одним guarded UPDATE
	IncrementEnrolled(ctx context.Context, id int64) error
}

// EnrollmentRepository интерфейс репозитория зачислений
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error)
	GetByProgramAndUser(ctx context.Context, programID, userID int64) (*domain.Enrollment, error)
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetPrincipal(ctx context.Context, userID int64) (*domain.Principal, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
