package list_arenas

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

// Handle GET /api/v1/arenas
// Query params: sportType, location, search (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Собираем опциональные фильтры из query параметров
	req := &models.ListArenasRequest{}
	if v := query.Get("sportType"); v != "" {
		req.SportType = &v
	}
	if v := query.Get("location"); v != "" {
		req.Location = &v
	}
	if v := query.Get("search"); v != "" {
		req.Search = &v
	}

	// Получаем каталог арен
	result, err := h.service.ListArenas(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /arenas - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /arenas - Failed to list arenas: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /arenas - Arenas retrieved successfully: count=%d", len(result.Arenas))
	handlers.RespondJSON(w, http.StatusOK, result.Arenas)
}
