package domain

import (
	"time"

	"github.com/sportplex/SP-BookingService/pkg/money"
)

// EnrollmentStatus represents the status of a program enrollment
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
)

// Enrollment represents a confirmed spot in a coaching program.
// Created only after the capacity guard succeeds; the enrollment and the
// program's enrolled_count increment commit in the same transaction.
type Enrollment struct {
	ID        int64
	Reference string // public enrollment reference (uuid)
	ProgramID int64
	UserID    int64
	Status    EnrollmentStatus

	// Denormalized data for history
	ProgramTitle string
	Price        money.Money

	EnrolledAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive returns true if the enrollment currently holds a capacity spot
func (e *Enrollment) IsActive() bool {
	return e.Status == EnrollmentActive
}

// CanBeCancelled returns true if the enrollment can be cancelled.
// Only an active enrollment still holds a spot to release.
func (e *Enrollment) CanBeCancelled() bool {
	return e.Status == EnrollmentActive
}
