package complete_enrollment

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
	msgAlreadyCompleted    = "зачисление уже завершено"
	msgNotActive           = "зачисление не активно"
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

// Handle PATCH /api/v1/enrollments/{enrollmentId}/complete
// Операция доступна только администратору
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем enrollmentId из URL
	vars := mux.Vars(r)
	enrollmentIDStr := vars["enrollmentId"]

	enrollmentID, err := strconv.ParseInt(enrollmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /enrollments/{id}/complete - Invalid enrollment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEnrollmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /enrollments/{id}/complete - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Завершаем зачисление (сервис сам проверит роль ADMIN)
	result, err := h.service.Complete(r.Context(), &models.CompleteEnrollmentRequest{
		EnrollmentID: enrollmentID,
		RequestorID:  userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, enrollments.ErrEnrollmentNotFound):
			h.logger.Warn("PATCH /enrollments/{id}/complete - Enrollment not found: enrollment_id=%d", enrollmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, enrollments.ErrAccessDenied):
			h.logger.Warn("PATCH /enrollments/{id}/complete - Access denied: enrollment_id=%d, user_id=%d",
				enrollmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, enrollments.ErrAlreadyCompleted):
			h.logger.Warn("PATCH /enrollments/{id}/complete - Already completed: enrollment_id=%d", enrollmentID)
			handlers.RespondBadRequest(w, msgAlreadyCompleted)

		case errors.Is(err, enrollments.ErrCannotCancel):
			h.logger.Warn("PATCH /enrollments/{id}/complete - Enrollment not active: enrollment_id=%d", enrollmentID)
			handlers.RespondBadRequest(w, msgNotActive)

		case errors.Is(err, enrollments.ErrInvalidInput):
			h.logger.Warn("PATCH /enrollments/{id}/complete - Invalid input: enrollment_id=%d, error=%v",
				enrollmentID, err)
			handlers.RespondBadRequest(w, msgInvalidEnrollmentID)

		default:
			h.logger.Error("PATCH /enrollments/{id}/complete - Failed to complete enrollment: enrollment_id=%d, error=%v",
				enrollmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /enrollments/{id}/complete - Enrollment completed successfully: enrollment_id=%d, user_id=%d",
		enrollmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
