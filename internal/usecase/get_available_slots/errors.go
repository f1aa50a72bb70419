package get_available_slots

import "errors"

var (
	// ErrArenaNotFound возвращается, когда арена не найдена
	ErrArenaNotFound = errors.New("get_available_slots: arena not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidHoursRange возвращается, когда у арены некорректные часы работы
	// (открытие не раньше закрытия) - это повреждение данных каталога
	ErrInvalidHoursRange = errors.New("get_available_slots: invalid operating hours range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
