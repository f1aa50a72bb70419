package domain

import (
	"time"

	"github.com/sportplex/SP-BookingService/pkg/money"
	"github.com/sportplex/SP-BookingService/pkg/types"
)

// BookingStatus represents the status of an arena booking
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "upcoming"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents an hour-slot arena reservation
type Booking struct {
	ID        int64
	Reference string // public booking reference (uuid)
	UserID    int64
	ArenaID   int64

	BookingDate   time.Time
	StartTime     types.TimeString
	DurationHours int
	TotalPrice    money.Money
	Status        BookingStatus

	// Denormalized data for history
	ArenaName string
	UserName  *string
	UserEmail *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time window
func (b *Booking) IsActive() bool {
	return b.Status == StatusUpcoming
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusUpcoming
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// EndTime returns the end of the booked window
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationHours * MinutesPerSlot)
}

// ArenaBookingsFilter фильтр для выборки бронирований арены
type ArenaBookingsFilter struct {
	ArenaID         int64      // Обязательный параметр
	Date            *time.Time // Конкретная дата (опционально)
	Status          *BookingStatus
	IncludeInactive bool // Включать ли отменённые бронирования
}
