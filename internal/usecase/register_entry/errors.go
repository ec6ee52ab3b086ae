package register_entry

import "errors"

var (
	// ErrVehicleAlreadyParked возвращается, когда автомобиль с таким госномером уже на парковке
	ErrVehicleAlreadyParked = errors.New("register_entry: vehicle with this plate is already parked")

	// ErrNoSpaceAvailable возвращается, когда нет свободных мест для данной категории транспорта
	ErrNoSpaceAvailable = errors.New("register_entry: no free space available for this vehicle type")

	// ErrOperatorNotFound возвращается, когда оператор не найден
	ErrOperatorNotFound = errors.New("register_entry: operator not found")

	// ErrOperatorInactive возвращается, когда оператор деактивирован
	ErrOperatorInactive = errors.New("register_entry: operator is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("register_entry: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_entry: internal error")
)
