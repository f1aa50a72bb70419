package domain

// Booking durations are a closed set in this domain: arenas are rented
// for one to four whole hours
const (
	MinBookingDurationHours = 1
	MaxBookingDurationHours = 4
)

// Slot geometry: arena slots are hour-aligned
const (
	MinutesPerSlot = 60
)

// Business validation constants
const (
	MaxCancellationReasonLength = 500
	MaxSearchQueryLength        = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveBookingStatuses список статусов, не занимающих временные слоты
// Используется при подсчёте доступных слотов
var InactiveBookingStatuses = []BookingStatus{
	StatusCancelled,
}

// IsAllowedDuration reports whether the requested duration is in the allowed set
func IsAllowedDuration(hours int) bool {
	return hours >= MinBookingDurationHours && hours <= MaxBookingDurationHours
}
