package domain

import (
	"time"

	"github.com/sportplex/SP-BookingService/pkg/money"
	"github.com/sportplex/SP-BookingService/pkg/types"
)

// SportType represents the kind of sport an arena or program is dedicated to
type SportType string

const (
	SportBasketball SportType = "BASKETBALL"
	SportTennis     SportType = "TENNIS"
	SportFootball   SportType = "FOOTBALL"
	SportVolleyball SportType = "VOLLEYBALL"
	SportBadminton  SportType = "BADMINTON"
	SportSwimming   SportType = "SWIMMING"
)

// Arena represents a bookable sports facility
// Operating hours are hour-granular; bookable slots are derived from them, never stored
type Arena struct {
	ID          int64
	Name        string
	Description string
	SportType   SportType
	Location    string

	OpeningTime types.TimeString // e.g. "06:00"
	ClosingTime types.TimeString // e.g. "22:00"

	HourlyRate money.Money // price per hour in minor units
	Capacity   int         // spectator capacity, not booking concurrency

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidHours returns true if the operating hours form a non-empty interval
func (a *Arena) HasValidHours() bool {
	return !a.OpeningTime.IsZero() && !a.ClosingTime.IsZero() && a.OpeningTime.IsBefore(a.ClosingTime)
}

// ArenaFilter фильтр каталога арен
// Search выполняет наивный substring-поиск по названию и описанию
type ArenaFilter struct {
	SportType *SportType
	Location  *string
	Search    *string
}
