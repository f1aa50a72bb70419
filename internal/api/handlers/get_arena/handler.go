package get_arena

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sportplex/SP-BookingService/internal/api/handlers"
	"github.com/sportplex/SP-BookingService/internal/service/catalog"
)

const (
	msgInvalidArenaID = "некорректный ID арены"
	msgNotFound       = "арена не найдена"
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

// Handle GET /api/v1/arenas/{arenaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем arenaId из URL
	vars := mux.Vars(r)
	arenaIDStr := vars["arenaId"]

	arenaID, err := strconv.ParseInt(arenaIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /arenas/{id} - Invalid arena ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArenaID)
		return
	}

	// Получаем арену
	arena, err := h.service.GetArena(r.Context(), arenaID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrArenaNotFound):
			h.logger.Warn("GET /arenas/{id} - Arena not found: arena_id=%d", arenaID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /arenas/{id} - Invalid input: arena_id=%d, error=%v", arenaID, err)
			handlers.RespondBadRequest(w, msgInvalidArenaID)

		default:
			h.logger.Error("GET /arenas/{id} - Failed to get arena: arena_id=%d, error=%v", arenaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /arenas/{id} - Arena retrieved successfully: arena_id=%d", arenaID)
	handlers.RespondJSON(w, http.StatusOK, arena)
}
