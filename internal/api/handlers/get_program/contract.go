package get_program

import (
	"context"

	"github.com/sportplex/SP-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetProgram(ctx context.Context, programID int64) (*models.ProgramResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
