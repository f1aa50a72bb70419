package models

import (
	"errors"
	"time"

	"github.com/sportplex/SP-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid enrollment status")
)

// Request модели

// GetUserEnrollmentsRequest запрос на получение зачислений пользователя
type GetUserEnrollmentsRequest struct {
	UserID      int64   `json:"userId"`
	RequestorID int64   `json:"requestorId"`
	Status      *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// CancelEnrollmentRequest запрос на отмену зачисления
type CancelEnrollmentRequest struct {
	EnrollmentID int64 `json:"enrollmentId"`
	RequestorID  int64 `json:"requestorId"`
}

// CompleteEnrollmentRequest запрос на завершение зачисления
type CompleteEnrollmentRequest struct {
	EnrollmentID int64 `json:"enrollmentId"`
	RequestorID  int64 `json:"requestorId"`
}

// Response модели

// EnrollmentResponse ответ с данными зачисления
type EnrollmentResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	ProgramID int64  `json:"programId"`
	UserID    int64  `json:"userId"`
	Status    string `json:"status"`
	Price     int64  `json:"price"` // в минорных единицах

	// Денормализованные данные
	ProgramTitle string `json:"programTitle"`

	EnrolledAt time.Time `json:"enrolledAt"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// EnrollmentListResponse ответ со списком зачислений
type EnrollmentListResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
}

// Методы конвертации

// FromDomainEnrollment конвертирует domain модель в DTO
func FromDomainEnrollment(e *domain.Enrollment) *EnrollmentResponse {
	if e == nil {
		return nil
	}

	return &EnrollmentResponse{
		ID:           e.ID,
		Reference:    e.Reference,
		ProgramID:    e.ProgramID,
		UserID:       e.UserID,
		Status:       string(e.Status),
		Price:        e.Price.Minor(),
		ProgramTitle: e.ProgramTitle,
		EnrolledAt:   e.EnrolledAt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// FromDomainEnrollmentList конвертирует список domain моделей в DTO
func FromDomainEnrollmentList(enrollments []*domain.Enrollment) *EnrollmentListResponse {
	if enrollments == nil {
		return &EnrollmentListResponse{
			Enrollments: []EnrollmentResponse{},
		}
	}

	resp := &EnrollmentListResponse{
		Enrollments: make([]EnrollmentResponse, len(enrollments)),
	}

	for i, enrollment := range enrollments {
		if enrollmentResp := FromDomainEnrollment(enrollment); enrollmentResp != nil {
			resp.Enrollments[i] = *enrollmentResp
		}
	}

	return resp
}

// ToDomainEnrollmentStatus конвертирует строку в domain.EnrollmentStatus с валидацией
func ToDomainEnrollmentStatus(status string) (domain.EnrollmentStatus, error) {
	s := domain.EnrollmentStatus(status)

	validStatuses := []domain.EnrollmentStatus{
		domain.EnrollmentActive,
		domain.EnrollmentCompleted,
		domain.EnrollmentCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
