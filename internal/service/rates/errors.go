package rates

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда тарифная сетка не найдена
	ErrScheduleNotFound = errors.New("rate schedule not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
