package bookings

import (
	"context"

	"github.com/sportplex/SP-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// IdentityClient интерфейс клиента IdentityService
// Используется для проверки прав доступа (роль ADMIN)
type IdentityClient interface {
	GetPrincipal(ctx context.Context, userID int64) (*domain.Principal, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
