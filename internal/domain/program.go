package domain

import (
	"time"

	"github.com/sportplex/SP-BookingService/pkg/money"
)

// ProgramLevel represents the skill level a coaching program targets
type ProgramLevel string

const (
	LevelBeginner     ProgramLevel = "BEGINNER"
	LevelIntermediate ProgramLevel = "INTERMEDIATE"
	LevelAdvanced     ProgramLevel = "ADVANCED"
	LevelAllLevels    ProgramLevel = "ALL_LEVELS"
)

// Program represents a coaching class with fixed price and enrollment capacity.
// EnrolledCount mutates only through a successful enrollment and never
// exceeds Capacity; the storage layer enforces this with a guarded
// increment inside the enrollment transaction.
type Program struct {
	ID          int64
	Title       string
	Description string
	SportType   SportType
	Level       ProgramLevel
	CoachName   string

	Price         money.Money // fixed program price in minor units
	Capacity      int
	EnrolledCount int

	Schedule  string // human-readable, e.g. "Tuesdays and Thursdays, 6:00 PM - 8:00 PM"
	StartDate time.Time
	EndDate   time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFull returns true if no enrollment spots are left
func (p *Program) IsFull() bool {
	return p.EnrolledCount >= p.Capacity
}

// SpotsLeft returns the number of remaining enrollment spots
func (p *Program) SpotsLeft() int {
	left := p.Capacity - p.EnrolledCount
	if left < 0 {
		return 0
	}
	return left
}

// ProgramFilter фильтр каталога программ
type ProgramFilter struct {
	SportType *SportType
	Level     *ProgramLevel
	Search    *string
}
