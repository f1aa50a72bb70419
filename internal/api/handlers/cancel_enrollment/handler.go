package cancel_enrollment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sportplex/SP-BookingService/internal/api/handlers"
	"github.com/sportplex/SP-BookingService/internal/api/middleware"
	"github.com/sportplex/SP-BookingService/internal/service/enrollments"
	"github.com/sportplex/SP-BookingService/internal/service/enrollments/models"
)

const (
	msgInvalidEnrollmentID = "некорректный ID зачисления"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgNotFound            = "зачисление не найдено"
	msgForbidden           = "доступ запрещен"
	msgCannotCancel        = "зачисление не может быть отменено"
	msgPersistenceTimeout  = "превышено время отмены зачисления, попробуйте еще раз"
)

type Handler struct {
	service EnrollmentService
	logger  Logger
}

func NewHandler(service EnrollmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/enrollments/{enrollmentId}/cancel
// Отмена освобождает место в программе для новых зачислений
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем enrollmentId из URL
	vars := mux.Vars(r)
	enrollmentIDStr := vars["enrollmentId"]

	enrollmentID, err := strconv.ParseInt(enrollmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /enrollments/{id}/cancel - Invalid enrollment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEnrollmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /enrollments/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Отменяем зачисление (сервис сам проверит права владельца/администратора)
	result, err := h.service.Cancel(r.Context(), &models.CancelEnrollmentRequest{
		EnrollmentID: enrollmentID,
		RequestorID:  userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, enrollments.ErrEnrollmentNotFound):
			h.logger.Warn("PATCH /enrollments/{id}/cancel - Enrollment not found: enrollment_id=%d", enrollmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, enrollments.ErrAccessDenied):
			h.logger.Warn("PATCH /enrollments/{id}/cancel - Access denied: enrollment_id=%d, user_id=%d",
				enrollmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, enrollments.ErrCannotCancel):
			h.logger.Warn("PATCH /enrollments/{id}/cancel - Cannot cancel: enrollment_id=%d", enrollmentID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		case errors.Is(err, enrollments.ErrPersistenceTimeout):
			h.logger.Error("PATCH /enrollments/{id}/cancel - Persistence timeout: enrollment_id=%d", enrollmentID)
			handlers.RespondGatewayTimeout(w, msgPersistenceTimeout)

		case errors.Is(err, enrollments.ErrInvalidInput):
			h.logger.Warn("PATCH /enrollments/{id}/cancel - Invalid input: enrollment_id=%d, error=%v",
				enrollmentID, err)
			handlers.RespondBadRequest(w, msgInvalidEnrollmentID)

		default:
			h.logger.Error("PATCH /enrollments/{id}/cancel - Failed to cancel enrollment: enrollment_id=%d, error=%v",
				enrollmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /enrollments/{id}/cancel - Enrollment cancelled successfully: enrollment_id=%d, user_id=%d",
		enrollmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
