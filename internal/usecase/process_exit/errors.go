package process_exit

import "errors"

var (
	// ErrVehicleNotParked возвращается, когда автомобиль с таким госномером не найден на парковке
	ErrVehicleNotParked = errors.New("process_exit: vehicle with this plate is not parked")

	// ErrTransactionNotFound возвращается, когда у автомобиля нет открытой парковочной транзакции
	ErrTransactionNotFound = errors.New("process_exit: no open transaction for this vehicle")

	// ErrInvalidInterval возвращается, когда время выезда раньше времени въезда
	ErrInvalidInterval = errors.New("process_exit: exit time is before entry time")

	// ErrOperatorNotFound возвращается, когда оператор не найден
	ErrOperatorNotFound = errors.New("process_exit: operator not found")

	// ErrOperatorInactive возвращается, когда оператор деактивирован
	ErrOperatorInactive = errors.New("process_exit: operator is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("process_exit: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("process_exit: internal error")
)
