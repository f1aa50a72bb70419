package txmanager

import (
	"context"
	"database/sql"

	"github.com/sportplex/SP-BookingService/pkg/dbmetrics"
)

// sqlDB адаптирует *sql.DB к интерфейсу TxBeginner
// Используется, когда метрики отключены и БД не обёрнута в dbmetrics.DB
type sqlDB struct {
	db *sql.DB
}

// WrapDB адаптирует чистый *sql.DB для использования с TransactionManager
func WrapDB(db *sql.DB) TxBeginner {
	return &sqlDB{db: db}
}

func (s *sqlDB) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return tx, nil
}
