package enroll_program

import (
	"time"

	enrollProgram "github.com/sportplex/SP-BookingService/internal/usecase/enroll_program"
)

// EnrollProgramRequest HTTP request model
type EnrollProgramRequest struct {
	ProgramID int64 `json:"programId"`
}

// EnrollmentResponse HTTP response model
type EnrollmentResponse struct {
	ID           int64  `json:"id"`
	Reference    string `json:"reference"`
	ProgramID    int64  `json:"programId"`
	UserID       int64  `json:"userId"`
	Status       string `json:"status"`
	Price        int64  `json:"price"` // в минорных единицах
	ProgramTitle string `json:"programTitle"`
	SpotsLeft    int    `json:"spotsLeft"`
	EnrolledAt   string `json:"enrolledAt"`
	CreatedAt    string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EnrollProgramRequest) ToUseCaseRequest(userID int64) *enrollProgram.Request {
	return &enrollProgram.Request{
		UserID:    userID,
		ProgramID: r.ProgramID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *enrollProgram.Response) *EnrollmentResponse {
	return &EnrollmentResponse{
		ID:           resp.ID,
		Reference:    resp.Reference,
		ProgramID:    resp.ProgramID,
		UserID:       resp.UserID,
		Status:       resp.Status,
		Price:        resp.Price.Minor(),
		ProgramTitle: resp.ProgramTitle,
		SpotsLeft:    resp.SpotsLeft,
		EnrolledAt:   resp.EnrolledAt.Format(time.RFC3339),
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
