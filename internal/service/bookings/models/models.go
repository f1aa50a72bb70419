package models

import (
	"errors"
	"time"

	"github.com/sportplex/SP-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetBookingRequest запрос на получение бронирования
type GetBookingRequest struct {
	BookingID   int64 `json:"bookingId"`
	RequestorID int64 `json:"requestorId"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID      int64   `json:"userId"`
	RequestorID int64   `json:"requestorId"`
	Status      *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	BookingID   int64  `json:"bookingId"`
	RequestorID int64  `json:"requestorId"`
	Reason      string `json:"cancellationReason"`
}

// CompleteBookingRequest запрос на завершение бронирования
type CompleteBookingRequest struct {
	BookingID   int64 `json:"bookingId"`
	RequestorID int64 `json:"requestorId"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64  `json:"id"`
	Reference     string `json:"reference"`
	UserID        int64  `json:"userId"`
	ArenaID       int64  `json:"arenaId"`
	BookingDate   string `json:"bookingDate"` // "2026-09-15"
	StartTime     string `json:"startTime"`   // "10:00"
	EndTime       string `json:"endTime"`     // "12:00"
	DurationHours int    `json:"durationHours"`
	TotalPrice    int64  `json:"totalPrice"` // в минорных единицах
	Status        string `json:"status"`

	// Денормализованные данные
	ArenaName string  `json:"arenaName"`
	UserName  *string `json:"userName,omitempty"`
	UserEmail *string `json:"userEmail,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		UserID:             b.UserID,
		ArenaID:            b.ArenaID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationHours:      b.DurationHours,
		TotalPrice:         b.TotalPrice.Minor(),
		Status:             string(b.Status),
		ArenaName:          b.ArenaName,
		UserName:           b.UserName,
		UserEmail:          b.UserEmail,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Время окончания производное: start + duration
	if endTime, err := b.EndTime(); err == nil {
		resp.EndTime = endTime.String()
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	// Валидируем статус
	validStatuses := []domain.BookingStatus{
		domain.StatusUpcoming,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
