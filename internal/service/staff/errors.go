package staff

import "errors"

var (
	// ErrShiftNotFound возвращается, когда смена не найдена
	ErrShiftNotFound = errors.New("shift not found")

	// ErrOperatorNotFound возвращается, когда оператор не найден
	ErrOperatorNotFound = errors.New("operator not found")

	// ErrDuplicateEmail возвращается, когда оператор с таким email уже существует
	ErrDuplicateEmail = errors.New("operator with this email already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
