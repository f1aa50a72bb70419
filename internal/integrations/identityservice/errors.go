package identityservice

import "errors"

var (
	// ErrPrincipalNotFound возвращается, когда пользователь не известен IdentityService
	// Для бизнес-логики это эквивалент неаутентифицированного запроса
	ErrPrincipalNotFound = errors.New("identityservice client: principal not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identityservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identityservice client: invalid response")
)
