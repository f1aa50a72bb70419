package get_user_enrollments

import (
	"context"

	"github.com/sportplex/SP-BookingService/internal/service/enrollments/models"
)

type EnrollmentService interface {
	GetUserEnrollments(ctx context.Context, req *models.GetUserEnrollmentsRequest) (*models.EnrollmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
