package catalog

import "errors"

var (
	// ErrArenaNotFound возвращается, когда арена не найдена
	ErrArenaNotFound = errors.New("catalog.service: arena not found")

	// ErrProgramNotFound возвращается, когда программа не найдена
	ErrProgramNotFound = errors.New("catalog.service: program not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)
