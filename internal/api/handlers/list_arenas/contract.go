package list_arenas

import (
	"context"

	"github.com/sportplex/SP-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListArenas(ctx context.Context, req *models.ListArenasRequest) (*models.ArenaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
