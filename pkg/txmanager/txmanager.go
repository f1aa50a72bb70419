package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sportplex/SP-BookingService/pkg/dbmetrics"
)

var (
	// ErrTimeout возвращается, когда транзакция не уложилась в commit timeout
	// Вызывающая сторона обязана трактовать это как полный откат: ни одно изменение не применено
	ErrTimeout = errors.New("txmanager: transaction timed out")

	// ErrBeginTx возвращается при ошибке начала транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommit возвращается при ошибке фиксации транзакции
	ErrCommit = errors.New("txmanager: failed to commit transaction")
)

// TxBeginner интерфейс для начала транзакций
// Поддерживает *dbmetrics.DB и обёрнутый *sql.DB (см. WrapDB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции в сериализуемых транзакциях
// с ограниченным временем выполнения
type TransactionManager struct {
	db      TxBeginner
	timeout time.Duration
}

// NewTransactionManager создает transaction manager
// timeout ограничивает всю транзакцию, включая commit; 0 = без ограничения
func NewTransactionManager(db TxBeginner, timeout time.Duration) *TransactionManager {
	return &TransactionManager{db: db, timeout: timeout}
}

// DoSerializable выполняет fn внутри транзакции с уровнем изоляции SERIALIZABLE.
// Транзакция кладется в контекст (см. dbmetrics.WithTransaction), репозитории
// подхватывают её автоматически.
//
// Гарантии:
// - rollback на любом пути выхода: ошибка fn, паника, таймаут, ошибка commit;
// - при превышении timeout возвращается ErrTimeout и все изменения откатываются.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		if isContextError(ctx, err) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	committed := false
	defer func() {
		if !committed {
			// Ошибку rollback некуда возвращать: исходная ошибка важнее
			_ = tx.Rollback()
		}
	}()

	txCtx := dbmetrics.WithTransaction(ctx, tx)

	if err := fn(txCtx); err != nil {
		if isContextError(ctx, err) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if isContextError(ctx, err) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrCommit, err)
	}

	committed = true
	return nil
}

// isContextError проверяет, вызвана ли ошибка истечением дедлайна контекста
func isContextError(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	return ctx.Err() != nil
}
