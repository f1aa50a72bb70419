package cancel_enrollment

import (
	"context"

	"github.com/sportplex/SP-BookingService/internal/service/enrollments/models"
)

type EnrollmentService interface {
	Cancel(ctx context.Context, req *models.CancelEnrollmentRequest) (*models.EnrollmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
