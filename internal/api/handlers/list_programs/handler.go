package list_programs

import (
	"errors"
	"net/http"

	"github.com/sportplex/SP-BookingService/internal/api/handlers"
	"github.com/sportplex/SP-BookingService/internal/service/catalog"
	"github.com/sportplex/SP-BookingService/internal/service/catalog/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/programs
// Query params: sportType, level, search (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Собираем опциональные фильтры из query параметров
	req := &models.ListProgramsRequest{}
	if v := query.Get("sportType"); v != "" {
		req.SportType = &v
	}
	if v := query.Get("level"); v != "" {
		req.Level = &v
	}
	if v := query.Get("search"); v != "" {
		req.Search = &v
	}

	// Получаем каталог программ
	result, err := h.service.ListPrograms(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /programs - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /programs - Failed to list programs: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /programs - Programs retrieved successfully: count=%d", len(result.Programs))
	handlers.RespondJSON(w, http.StatusOK, result.Programs)
}
