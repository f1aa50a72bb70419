package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sportplex/SP-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/sportplex/SP-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidArenaID = "некорректный ID арены"
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgArenaNotFound  = "арена не найдена"
	msgInvalidHours   = "у арены некорректные часы работы"
	msgInvalidInput   = "некорректные данные запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/arenas/{arenaId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем arenaId из URL
	arenaIDStr := vars["arenaId"]
	arenaID, err := strconv.ParseInt(arenaIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /arenas/{id}/available-slots - Invalid arena ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArenaID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /arenas/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(arenaID, dateStr)
	if err != nil {
		h.logger.Warn("GET /arenas/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrArenaNotFound):
			h.logger.Warn("GET /arenas/{id}/available-slots - Arena not found: arena_id=%d", arenaID)
			handlers.RespondNotFound(w, msgArenaNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidHoursRange):
			h.logger.Error("GET /arenas/{id}/available-slots - Invalid operating hours: arena_id=%d", arenaID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidHours)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /arenas/{id}/available-slots - Invalid input: arena_id=%d, error=%v", arenaID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /arenas/{id}/available-slots - Failed to get slots: arena_id=%d, error=%v",
				arenaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /arenas/{id}/available-slots - Slots retrieved successfully: arena_id=%d, slots_count=%d",
		arenaID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
