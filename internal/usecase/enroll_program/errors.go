package enroll_program

import "errors"

var (
	// ErrAuthenticationRequired возвращается, когда запрос пришёл без аутентифицированного пользователя
	ErrAuthenticationRequired = errors.New("enroll_program: authentication required")

	// ErrProgramNotFound возвращается, когда программа не найдена
	ErrProgramNotFound = errors.New("enroll_program: program not found")

	// ErrProgramFull возвращается, когда все места в программе заняты
	ErrProgramFull = errors.New("enroll_program: program capacity exceeded")

	// ErrAlreadyEnrolled возвращается при повторном зачислении в ту же программу
	ErrAlreadyEnrolled = errors.New("enroll_program: user is already enrolled")

	// ErrPersistenceTimeout возвращается, когда транзакция не уложилась в отведённое время
	// Занятое место при этом освобождено откатом транзакции
	ErrPersistenceTimeout = errors.New("enroll_program: persistence timeout")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("enroll_program: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("enroll_program: internal error")
)
