package arena

import "errors"

var (
	// ErrArenaNotFound возвращается, когда арена не найдена
	ErrArenaNotFound = errors.New("arena.repository: arena not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("arena.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("arena.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("arena.repository: failed to scan row")
)
