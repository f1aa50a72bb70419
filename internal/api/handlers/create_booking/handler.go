package create_booking

import (
	"errors"
	"net/http"

	"github.com/sportplex/SP-BookingService/internal/api/handlers"
	"github.com/sportplex/SP-BookingService/internal/api/middleware"
	createBooking "github.com/sportplex/SP-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgArenaNotFound        = "арена не найдена"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgInvalidBookingDate   = "некорректная дата бронирования"
	msgInvalidDuration      = "некорректная длительность бронирования, допустимо 1-4 часа"
	msgInvalidBookingWindow = "запрошенное время выходит за часы работы арены"
	msgPersistenceTimeout   = "превышено время сохранения бронирования, попробуйте еще раз"
	msgInvalidInput         = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrAuthenticationRequired):
			h.logger.Warn("POST /bookings - Authentication required: user_id=%d", userID)
			handlers.RespondUnauthorized(w, msgMissingUserID)

		case errors.Is(err, createBooking.ErrArenaNotFound):
			h.logger.Warn("POST /bookings - Arena not found: arena_id=%d", req.ArenaID)
			handlers.RespondNotFound(w, msgArenaNotFound)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, arena_id=%d", userID, req.ArenaID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, arena_id=%d", userID, req.ArenaID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: user_id=%d, duration=%d", userID, req.DurationHours)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidBookingWindow):
			h.logger.Warn("POST /bookings - Booking window outside operating hours: user_id=%d, arena_id=%d",
				userID, req.ArenaID)
			handlers.RespondBadRequest(w, msgInvalidBookingWindow)

		case errors.Is(err, createBooking.ErrPersistenceTimeout):
			h.logger.Error("POST /bookings - Persistence timeout: user_id=%d, arena_id=%d", userID, req.ArenaID)
			handlers.RespondGatewayTimeout(w, msgPersistenceTimeout)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, arena_id=%d, error=%v",
				userID, req.ArenaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, arena_id=%d",
		result.ID, userID, req.ArenaID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
