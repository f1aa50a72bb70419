package program

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

var programColumns = []string{
	"id",
	"title",
	"description",
	"sport_type",
	"level",
	"coach_name",
	"price",
	"capacity",
	"enrolled_count",
	"schedule",
	"start_date",
	"end_date",
	"created_at",
	"updated_at",
}

// Repository репозиторий коучинговых программ
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория программ
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает программу по ID
// Внутри транзакции записи выбираются с FOR UPDATE: проверка дубликата
// и инкремент счётчика должны видеть консистентное состояние строки
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Program, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(programColumns...).
		From("programs").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	program, err := r.scanProgram(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProgramNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan program: %v", ErrScanRow, err)
	}

	return program, nil
}

// List получает каталог программ с фильтрацией
// Search выполняет наивный substring-поиск (ILIKE) по названию и описанию
func (r *Repository) List(ctx context.Context, filter domain.ProgramFilter) ([]*domain.Program, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(programColumns...).
		From("programs").
		OrderBy("start_date ASC, title ASC")

	if filter.SportType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"sport_type": *filter.SportType})
	}

	if filter.Level != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"level": *filter.Level})
	}

	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
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

	programs := make([]*domain.Program, 0)
	for rows.Next() {
		program, err := r.scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return programs, nil
}

// IncrementEnrolled атомарно занимает одно место в программе.
// Проверка и инкремент выполняются одним UPDATE с условием
// enrolled_count < capacity, единственная точка, где счётчик растёт.
// Возвращает ErrCapacityExceeded, если свободных мест нет,
// и ErrProgramNotFound, если программа не существует.
func (r *Repository) IncrementEnrolled(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("programs").
		Set("enrolled_count", squirrel.Expr("enrolled_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("enrolled_count < capacity")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementEnrolled - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementEnrolled - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementEnrolled - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо программы нет, либо мест нет - различаем отдельным запросом
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrCapacityExceeded
	}

	return nil
}

// DecrementEnrolled освобождает одно место в программе
// Компенсирующая операция при отмене зачисления
func (r *Repository) DecrementEnrolled(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("programs").
		Set("enrolled_count", squirrel.Expr("enrolled_count - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("enrolled_count > 0")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementEnrolled - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementEnrolled - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementEnrolled - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProgramNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanProgram(row rowScanner) (*domain.Program, error) {
	var program domain.Program
	var price int64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&program.ID,
		&program.Title,
		&program.Description,
		&program.SportType,
		&program.Level,
		&program.CoachName,
		&price,
		&program.Capacity,
		&program.EnrolledCount,
		&program.Schedule,
		&program.StartDate,
		&program.EndDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	program.Price = money.Money(price)
	program.CreatedAt = createdAt.Time
	program.UpdatedAt = updatedAt.Time

	return &program, nil
}
