package get_available_slots

import (
	"context"

	"github.com/sportplex/SP-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByArenaAndDate получает бронирования арены на конкретную дату
	GetByArenaAndDate(ctx context.Context, filter domain.ArenaBookingsFilter) ([]*domain.Booking, error)
}

// ArenaRepository интерфейс репозитория арен
type ArenaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Arena, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
