package enrollment

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

var enrollmentColumns = []string{
	"id",
	"reference",
	"program_id",
	"user_id",
	"status",
	"program_title",
	"price",
	"enrolled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий зачислений в программы
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория зачислений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое зачисление
// Вызывается только внутри транзакции зачисления, после успешного
// инкремента enrolled_count в программе
func (r *Repository) Create(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("enrollments").
		Columns(
			"reference",
			"program_id",
			"user_id",
			"status",
			"program_title",
			"price",
			"enrolled_at",
		).
		Values(
			enrollment.Reference,
			enrollment.ProgramID,
			enrollment.UserID,
			enrollment.Status,
			enrollment.ProgramTitle,
			enrollment.Price.Minor(),
			enrollment.EnrolledAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&enrollment.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	enrollment.CreatedAt = createdAt.Time
	enrollment.UpdatedAt = updatedAt.Time

	return enrollment, nil
}

// GetByID получает зачисление по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(enrollmentColumns...).
		From("enrollments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	enrollment, err := r.scanEnrollment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan enrollment: %v", ErrScanRow, err)
	}

	return enrollment, nil
}

// GetByProgramAndUser получает активное зачисление пользователя в программу
// Используется для проверки повторного зачисления
func (r *Repository) GetByProgramAndUser(ctx context.Context, programID, userID int64) (*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(enrollmentColumns...).
		From("enrollments").
		Where(squirrel.Eq{
			"program_id": programID,
			"user_id":    userID,
			"status":     domain.EnrollmentActive,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProgramAndUser - build select query: %v", ErrBuildQuery, err)
	}

	enrollment, err := r.scanEnrollment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProgramAndUser - scan enrollment: %v", ErrScanRow, err)
	}

	return enrollment, nil
}

// GetByUserID получает зачисления пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.EnrollmentStatus) ([]*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(enrollmentColumns...).
		From("enrollments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("enrolled_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	enrollments := make([]*domain.Enrollment, 0)
	for rows.Next() {
		enrollment, err := r.scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return enrollments, nil
}

// UpdateStatus обновляет статус зачисления
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.EnrollmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("enrollments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEnrollmentNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanEnrollment(row rowScanner) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	var price int64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&enrollment.ID,
		&enrollment.Reference,
		&enrollment.ProgramID,
		&enrollment.UserID,
		&enrollment.Status,
		&enrollment.ProgramTitle,
		&price,
		&enrollment.EnrolledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	enrollment.Price = money.Money(price)
	enrollment.CreatedAt = createdAt.Time
	enrollment.UpdatedAt = updatedAt.Time

	return &enrollment, nil
}
