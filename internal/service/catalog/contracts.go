package catalog

import (
	"context"

	"github.com/sportplex/SP-BookingService/internal/domain"
)

// ArenaRepository интерфейс репозитория арен
type ArenaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Arena, error)
	List(ctx context.Context, filter domain.ArenaFilter) ([]*domain.Arena, error)
}

// ProgramRepository интерфейс репозитория программ
type ProgramRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Program, error)
	List(ctx context.Context, filter domain.ProgramFilter) ([]*domain.Program, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
