package enrollments

import "errors"

var (
	// ErrEnrollmentNotFound возвращается, когда зачисление не найдено
	ErrEnrollmentNotFound = errors.New("enrollments.service: enrollment not found")

	// ErrAccessDenied возвращается при попытке доступа к чужому зачислению
	ErrAccessDenied = errors.New("enrollments.service: access denied")

	// ErrAlreadyCompleted возвращается при повторном завершении зачисления
	ErrAlreadyCompleted = errors.New("enrollments.service: enrollment is already completed")

	// ErrCannotCancel возвращается при попытке отменить неактивное зачисление
	ErrCannotCancel = errors.New("enrollments.service: enrollment cannot be cancelled")

	// ErrPersistenceTimeout возвращается при превышении времени сохранения
	ErrPersistenceTimeout = errors.New("enrollments.service: persistence timeout")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("enrollments.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("enrollments.service: internal error")
)
