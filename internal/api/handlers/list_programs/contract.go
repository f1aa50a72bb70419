package list_programs

import (
	"context"

	"github.com/sportplex/SP-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListPrograms(ctx context.Context, req *models.ListProgramsRequest) (*models.ProgramListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
