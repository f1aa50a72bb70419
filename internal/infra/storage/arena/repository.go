package arena

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sportplex/SP-BookingService/internal/domain"
	"github.com/sportplex/SP-BookingService/pkg/dbmetrics"
	"github.com/sportplex/SP-BookingService/pkg/money"
	"github.com/sportplex/SP-BookingService/pkg/psqlbuilder"
)

var arenaColumns = []string{
	"id",
	"name",
	"description",
	"sport_type",
	"location",
	"opening_time",
	"closing_time",
	"hourly_rate",
	"capacity",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога арен
// Арены создаются администратором вне этого сервиса и в рамках
// запроса на бронирование неизменяемы, поэтому репозиторий read-only
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория арен
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает арену по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Arena, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(arenaColumns...).
		From("arenas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	arena, err := r.scanArena(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrArenaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan arena: %v", ErrScanRow, err)
	}

	return arena, nil
}

// List получает каталог арен с фильтрацией
// Search выполняет наивный substring-поиск (ILIKE) по названию и описанию
func (r *Repository) List(ctx context.Context, filter domain.ArenaFilter) ([]*domain.Arena, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(arenaColumns...).
		From("arenas").
		OrderBy("name ASC")

	if filter.SportType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"sport_type": *filter.SportType})
	}

	if filter.Location != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"location": "%" + *filter.Location + "%"})
	}

	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	arenas := make([]*domain.Arena, 0)
	for rows.Next() {
		arena, err := r.scanArena(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		arenas = append(arenas, arena)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return arenas, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanArena(row rowScanner) (*domain.Arena, error) {
	var arena domain.Arena
	var hourlyRate int64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&arena.ID,
		&arena.Name,
		&arena.Description,
		&arena.SportType,
		&arena.Location,
		&arena.OpeningTime,
		&arena.ClosingTime,
		&hourlyRate,
		&arena.Capacity,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	arena.HourlyRate = money.Money(hourlyRate)
	arena.CreatedAt = createdAt.Time
	arena.UpdatedAt = updatedAt.Time

	return &arena, nil
}
