package get_arena

import (
	"context"

	"github.com/sportplex/SP-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetArena(ctx context.Context, arenaID int64) (*models.ArenaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
