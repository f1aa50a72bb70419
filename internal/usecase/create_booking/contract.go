package create_booking

import (
	"context"
	"time"

	"github.com/sportplex/SP-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByArenaAndDate(ctx context.Context, filter domain.ArenaBookingsFilter) ([]*domain.Booking, error)
}

// ArenaRepository интерфейс репозитория арен
type ArenaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Arena, error)
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
