package create_booking

import "errors"

var (
	// ErrAuthenticationRequired возвращается, когда запрос пришёл без аутентифицированного пользователя
	ErrAuthenticationRequired = errors.New("create_booking: authentication required")

	// ErrArenaNotFound возвращается, когда арена не найдена
	ErrArenaNotFound = errors.New("create_booking: arena not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidDuration возвращается, когда длительность вне допустимого набора {1,2,3,4}
	ErrInvalidDuration = errors.New("create_booking: invalid booking duration")

	// ErrInvalidBookingWindow возвращается, когда запрошенное окно выходит за часы работы арены
	ErrInvalidBookingWindow = errors.New("create_booking: booking window is outside operating hours")

	// ErrSlotUnavailable возвращается, когда запрошенное окно пересекается с существующим бронированием
	ErrSlotUnavailable = errors.New("create_booking: slot is not available")

	// ErrPersistenceTimeout возвращается, когда транзакция не уложилась в отведённое время
	// Все изменения при этом откачены
	ErrPersistenceTimeout = errors.New("create_booking: persistence timeout")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
