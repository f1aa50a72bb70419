package enroll_program

import (
	"errors"
	"net/http"

	"github.com/sportplex/SP-BookingService/internal/api/handlers"
	"github.com/sportplex/SP-BookingService/internal/api/middleware"
	enrollProgram "github.com/sportplex/SP-BookingService/internal/usecase/enroll_program"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgProgramNotFound    = "программа не найдена"
	msgProgramFull        = "все места в программе заняты"
	msgAlreadyEnrolled    = "пользователь уже зачислен в программу"
	msgPersistenceTimeout = "превышено время сохранения зачисления, попробуйте еще раз"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase EnrollProgramUseCase
	logger  Logger
}

func NewHandler(useCase EnrollProgramUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/enrollments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /enrollments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req EnrollProgramRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /enrollments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, enrollProgram.ErrAuthenticationRequired):
			h.logger.Warn("POST /enrollments - Authentication required: user_id=%d", userID)
			handlers.RespondUnauthorized(w, msgMissingUserID)

		case errors.Is(err, enrollProgram.ErrProgramNotFound):
			h.logger.Warn("POST /enrollments - Program not found: program_id=%d", req.ProgramID)
			handlers.RespondNotFound(w, msgProgramNotFound)

		case errors.Is(err, enrollProgram.ErrProgramFull):
			h.logger.Warn("POST /enrollments - Program full: user_id=%d, program_id=%d", userID, req.ProgramID)
			handlers.RespondError(w, http.StatusConflict, msgProgramFull)

		case errors.Is(err, enrollProgram.ErrAlreadyEnrolled):
			h.logger.Warn("POST /enrollments - Already enrolled: user_id=%d, program_id=%d", userID, req.ProgramID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyEnrolled)

		case errors.Is(err, enrollProgram.ErrPersistenceTimeout):
			h.logger.Error("POST /enrollments - Persistence timeout: user_id=%d, program_id=%d", userID, req.ProgramID)
			handlers.RespondGatewayTimeout(w, msgPersistenceTimeout)

		case errors.Is(err, enrollProgram.ErrInvalidInput):
			h.logger.Warn("POST /enrollments - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /enrollments - Failed to enroll: user_id=%d, program_id=%d, error=%v",
				userID, req.ProgramID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /enrollments - Enrollment created successfully: enrollment_id=%d, user_id=%d, program_id=%d",
		result.ID, userID, req.ProgramID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
