package enrollments

import (
	"context"

	"github.com/sportplex/SP-BookingService/internal/domain"
)

// EnrollmentRepository интерфейс репозитория зачислений
type EnrollmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Enrollment, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.EnrollmentStatus) ([]*domain.Enrollment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.EnrollmentStatus) error
}

// ProgramRepository интерфейс репозитория программ
// Используется для освобождения места при отмене зачисления
type ProgramRepository interface {
	DecrementEnrolled(ctx context.Context, id int64) error
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetPrincipal(ctx context.Context, userID int64) (*domain.Principal, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
