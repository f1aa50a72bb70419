package get_available_slots

import (
	"time"

	"github.com/sportplex/SP-BookingService/internal/domain"
	getAvailableSlots "github.com/sportplex/SP-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ArenaID int64          `json:"arenaId"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

// SlotResponse модель часового слота в ответе
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(arenaID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ArenaID: arenaID,
		Date:    date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
		})
	}

	return &AvailableSlotsResponse{
		ArenaID: resp.ArenaID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}
