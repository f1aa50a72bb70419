package get_user_enrollments

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
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgInvalidStatus = "некорректный статус зачисления"
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

// Handle GET /api/v1/users/{userId}/enrollments
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/enrollments - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Получаем requestorID из контекста (через middleware Auth)
	requestorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/enrollments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	// Формируем запрос к сервису
	serviceReq := &models.GetUserEnrollmentsRequest{
		UserID:      userID,
		RequestorID: requestorID,
		Status:      statusPtr,
	}

	// Получаем зачисления пользователя (сервис сам проверит права доступа)
	result, err := h.service.GetUserEnrollments(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, enrollments.ErrAccessDenied):
			h.logger.Warn("GET /users/{userId}/enrollments - Access denied: user_id=%d, requestor_id=%d",
				userID, requestorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, enrollments.ErrInvalidInput):
			h.logger.Warn("GET /users/{userId}/enrollments - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{userId}/enrollments - Failed to get enrollments: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/enrollments - Enrollments retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Enrollments))
	handlers.RespondJSON(w, http.StatusOK, result.Enrollments)
}
