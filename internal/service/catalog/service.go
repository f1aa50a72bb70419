package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sportplex/SP-BookingService/internal/domain"
	arenaRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/arena"
	programRepo "github.com/sportplex/SP-BookingService/internal/infra/storage/program"
	"github.com/sportplex/SP-BookingService/internal/service/catalog/models"
)

// Service сервис каталога арен и коучинговых программ
// Каталог публичный и доступен без аутентификации
type Service struct {
	arenaRepo   ArenaRepository
	programRepo ProgramRepository
	logger      Logger
}

// NewService создает новый сервис каталога
func NewService(arenaRepo ArenaRepository, programRepo ProgramRepository, logger Logger) *Service {
	return &Service{
		arenaRepo:   arenaRepo,
		programRepo: programRepo,
		logger:      logger,
	}
}

// ListArenas возвращает каталог арен с фильтрацией
func (s *Service) ListArenas(ctx context.Context, req *models.ListArenasRequest) (*models.ArenaListResponse, error) {
	s.logger.Info("ListArenas: sportType=%v, location=%v, search=%v", req.SportType, req.Location, req.Search)

	filter := domain.ArenaFilter{
		Location: normalizeQuery(req.Location),
	}

	if req.SportType != nil {
		st, err := parseSportType(*req.SportType)
		if err != nil {
			return nil, err
		}
		filter.SportType = &st
	}

	search, err := normalizeSearch(req.Search)
	if err != nil {
		return nil, err
	}
	filter.Search = search

	arenas, err := s.arenaRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListArenas: failed to list arenas: %v", err)
		return nil, fmt.Errorf("%w: failed to list arenas: %v", ErrInternal, err)
	}

	return models.FromDomainArenaList(arenas), nil
}

// GetArena возвращает арену по ID
func (s *Service) GetArena(ctx context.Context, arenaID int64) (*models.ArenaResponse, error) {
	s.logger.Info("GetArena: id=%d", arenaID)

	if arenaID <= 0 {
		return nil, fmt.Errorf("%w: arenaID must be positive", ErrInvalidInput)
	}

	arena, err := s.arenaRepo.GetByID(ctx, arenaID)
	if err != nil {
		if errors.Is(err, arenaRepo.ErrArenaNotFound) {
			s.logger.Warn("GetArena: arena id=%d not found", arenaID)
			return nil, ErrArenaNotFound
		}
		s.logger.Error("GetArena: failed to get arena id=%d: %v", arenaID, err)
		return nil, fmt.Errorf("%w: failed to get arena: %v", ErrInternal, err)
	}

	return models.FromDomainArena(arena), nil
}

// ListPrograms возвращает каталог программ с фильтрацией
func (s *Service) ListPrograms(ctx context.Context, req *models.ListProgramsRequest) (*models.ProgramListResponse, error) {
	s.logger.Info("ListPrograms: sportType=%v, level=%v, search=%v", req.SportType, req.Level, req.Search)

	filter := domain.ProgramFilter{}

	if req.SportType != nil {
		st, err := parseSportType(*req.SportType)
		if err != nil {
			return nil, err
		}
		filter.SportType = &st
	}

	if req.Level != nil {
		level, err := parseProgramLevel(*req.Level)
		if err != nil {
			return nil, err
		}
		filter.Level = &level
	}

	search, err := normalizeSearch(req.Search)
	if err != nil {
		return nil, err
	}
	filter.Search = search

	programs, err := s.programRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListPrograms: failed to list programs: %v", err)
		return nil, fmt.Errorf("%w: failed to list programs: %v", ErrInternal, err)
	}

	return models.FromDomainProgramList(programs), nil
}

// GetProgram возвращает программу по ID
func (s *Service) GetProgram(ctx context.Context, programID int64) (*models.ProgramResponse, error) {
	s.logger.Info("GetProgram: id=%d", programID)

	if programID <= 0 {
		return nil, fmt.Errorf("%w: programID must be positive", ErrInvalidInput)
	}

	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, programRepo.ErrProgramNotFound) {
			s.logger.Warn("GetProgram: program id=%d not found", programID)
			return nil, ErrProgramNotFound
		}
		s.logger.Error("GetProgram: failed to get program id=%d: %v", programID, err)
		return nil, fmt.Errorf("%w: failed to get program: %v", ErrInternal, err)
	}

	return models.FromDomainProgram(program), nil
}

// parseSportType валидирует и приводит вид спорта к доменному типу
func parseSportType(raw string) (domain.SportType, error) {
	st := domain.SportType(strings.ToUpper(strings.TrimSpace(raw)))
	switch st {
	case domain.SportBasketball, domain.SportTennis, domain.SportFootball,
		domain.SportVolleyball, domain.SportBadminton, domain.SportSwimming:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown sport type %q", ErrInvalidInput, raw)
}

// parseProgramLevel валидирует и приводит уровень программы к доменному типу
func parseProgramLevel(raw string) (domain.ProgramLevel, error) {
	level := domain.ProgramLevel(strings.ToUpper(strings.TrimSpace(raw)))
	switch level {
	case domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced, domain.LevelAllLevels:
		return level, nil
	}
	return "", fmt.Errorf("%w: unknown program level %q", ErrInvalidInput, raw)
}

// normalizeSearch обрезает пробелы и ограничивает длину поисковой строки
func normalizeSearch(search *string) (*string, error) {
	if search == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*search)
	if trimmed == "" {
		return nil, nil
	}
	if len(trimmed) > domain.MaxSearchQueryLength {
		return nil, fmt.Errorf("%w: search query exceeds %d characters", ErrInvalidInput, domain.MaxSearchQueryLength)
	}
	return &trimmed, nil
}

// normalizeQuery обрезает пробелы, пустую строку трактует как отсутствие фильтра
func normalizeQuery(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
