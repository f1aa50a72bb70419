package get_program

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sportplex/SP-BookingService/internal/api/handlers"
	"github.com/sportplex/SP-BookingService/internal/service/catalog"
)

const (
	msgInvalidProgramID = "некорректный ID программы"
	msgNotFound         = "программа не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/programs/{programId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем programId из URL
	vars := mux.Vars(r)
	programIDStr := vars["programId"]

	programID, err := strconv.ParseInt(programIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /programs/{id} - Invalid program ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProgramID)
		return
	}

	// Получаем программу
	program, err := h.service.GetProgram(r.Context(), programID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProgramNotFound):
			h.logger.Warn("GET /programs/{id} - Program not found: program_id=%d", programID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /programs/{id} - Invalid input: program_id=%d, error=%v", programID, err)
			handlers.RespondBadRequest(w, msgInvalidProgramID)

		default:
			h.logger.Error("GET /programs/{id} - Failed to get program: program_id=%d, error=%v", programID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /programs/{id} - Program retrieved successfully: program_id=%d", programID)
	handlers.RespondJSON(w, http.StatusOK, program)
}
