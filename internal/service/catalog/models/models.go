package models

import (
	"time"

	"github.com/sportplex/SP-BookingService/internal/domain"
)

// Request модели

// ListArenasRequest запрос каталога арен
// Search - наивный substring-поиск по названию и описанию
type ListArenasRequest struct {
	SportType *string `json:"sportType,omitempty"`
	Location  *string `json:"location,omitempty"`
	Search    *string `json:"search,omitempty"`
}

// ListProgramsRequest запрос каталога программ
type ListProgramsRequest struct {
	SportType *string `json:"sportType,omitempty"`
	Level     *string `json:"level,omitempty"`
	Search    *string `json:"search,omitempty"`
}

// Response модели

// ArenaResponse ответ с данными арены
type ArenaResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SportType   string `json:"sportType"`
	Location    string `json:"location"`

	OpeningTime string `json:"openingTime"` // "06:00"
	ClosingTime string `json:"closingTime"` // "22:00"

	HourlyRate int64 `json:"hourlyRate"` // в минорных единицах
	Capacity   int   `json:"capacity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArenaListResponse ответ со списком арен
type ArenaListResponse struct {
	Arenas []ArenaResponse `json:"arenas"`
}

// ProgramResponse ответ с данными программы
type ProgramResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SportType   string `json:"sportType"`
	Level       string `json:"level"`
	CoachName   string `json:"coachName"`

	Price         int64 `json:"price"` // в минорных единицах
	Capacity      int   `json:"capacity"`
	EnrolledCount int   `json:"enrolledCount"`
	SpotsLeft     int   `json:"spotsLeft"`

	Schedule  string `json:"schedule"`
	StartDate string `json:"startDate"` // "2026-09-01"
	EndDate   string `json:"endDate"`   // "2026-12-01"

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProgramListResponse ответ со списком программ
type ProgramListResponse struct {
	Programs []ProgramResponse `json:"programs"`
}

// Методы конвертации

// FromDomainArena конвертирует domain модель в DTO
func FromDomainArena(a *domain.Arena) *ArenaResponse {
	if a == nil {
		return nil
	}

	return &ArenaResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		SportType:   string(a.SportType),
		Location:    a.Location,
		OpeningTime: a.OpeningTime.String(),
		ClosingTime: a.ClosingTime.String(),
		HourlyRate:  a.HourlyRate.Minor(),
		Capacity:    a.Capacity,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FromDomainArenaList конвертирует список domain моделей в DTO
func FromDomainArenaList(arenas []*domain.Arena) *ArenaListResponse {
	if arenas == nil {
		return &ArenaListResponse{
			Arenas: []ArenaResponse{},
		}
	}

	resp := &ArenaListResponse{
		Arenas: make([]ArenaResponse, len(arenas)),
	}

	for i, arena := range arenas {
		if arenaResp := FromDomainArena(arena); arenaResp != nil {
			resp.Arenas[i] = *arenaResp
		}
	}

	return resp
}

// FromDomainProgram конвертирует domain модель в DTO
func FromDomainProgram(p *domain.Program) *ProgramResponse {
	if p == nil {
		return nil
	}

	return &ProgramResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		SportType:     string(p.SportType),
		Level:         string(p.Level),
		CoachName:     p.CoachName,
		Price:         p.Price.Minor(),
		Capacity:      p.Capacity,
		EnrolledCount: p.EnrolledCount,
		SpotsLeft:     p.SpotsLeft(),
		Schedule:      p.Schedule,
		StartDate:     p.StartDate.Format(domain.DateFormat),
		EndDate:       p.EndDate.Format(domain.DateFormat),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromDomainProgramList конвертирует список domain моделей в DTO
func FromDomainProgramList(programs []*domain.Program) *ProgramListResponse {
	if programs == nil {
		return &ProgramListResponse{
			Programs: []ProgramResponse{},
		}
	}

	resp := &ProgramListResponse{
		Programs: make([]ProgramResponse, len(programs)),
	}

	for i, program := range programs {
		if programResp := FromDomainProgram(program); programResp != nil {
			resp.Programs[i] = *programResp
		}
	}

	return resp
}
