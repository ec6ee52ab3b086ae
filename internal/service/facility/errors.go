package facility

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда парковочное место не найдено
	ErrSpaceNotFound = errors.New("parking space not found")

	// ErrSpaceOccupied возвращается при попытке удалить или деактивировать занятое место
	ErrSpaceOccupied = errors.New("parking space is occupied")

	// ErrDuplicateNumber возвращается, когда место с таким номером уже существует
	ErrDuplicateNumber = errors.New("space number already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
