package create_booking

import (
	"time"

	"github.com/sportplex/SP-BookingService/internal/domain"
	createBooking "github.com/sportplex/SP-BookingService/internal/usecase/create_booking"
	"github.com/sportplex/SP-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ArenaID       int64  `json:"arenaId"`
	BookingDate   string `json:"bookingDate"` // "2026-09-15"
	StartTime     string `json:"startTime"`   // "10:00"
	DurationHours int    `json:"durationHours"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	Reference     string  `json:"reference"`
	UserID        int64   `json:"userId"`
	ArenaID       int64   `json:"arenaId"`
	BookingDate   string  `json:"bookingDate"`
	StartTime     string  `json:"startTime"`
	DurationHours int     `json:"durationHours"`
	TotalPrice    int64   `json:"totalPrice"` // в минорных единицах
	Status        string  `json:"status"`
	ArenaName     string  `json:"arenaName"`
	UserName      *string `json:"userName,omitempty"`
	UserEmail     *string `json:"userEmail,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:        userID,
		ArenaID:       r.ArenaID,
		Date:          bookingDate,
		StartTime:     startTime,
		DurationHours: r.DurationHours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		UserID:        resp.UserID,
		ArenaID:       resp.ArenaID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		DurationHours: resp.DurationHours,
		TotalPrice:    resp.TotalPrice.Minor(),
		Status:        resp.Status,
		ArenaName:     resp.ArenaName,
		UserName:      resp.UserName,
		UserEmail:     resp.UserEmail,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
