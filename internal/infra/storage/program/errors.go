package program

import "errors"

var (
	// ErrProgramNotFound возвращается, когда программа не найдена
	ErrProgramNotFound = errors.New("program.repository: program not found")

	// ErrCapacityExceeded возвращается, когда все места в программе заняты
	// Инкремент enrolled_count защищён условием enrolled_count < capacity
	ErrCapacityExceeded = errors.New("program.repository: program capacity exceeded")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("program.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("program.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("program.repository: failed to scan row")
)
