package get_fee_quote

import "errors"

var (
	// ErrVehicleNotParked возвращается, когда автомобиль с таким госномером не найден на парковке
	ErrVehicleNotParked = errors.New("get_fee_quote: vehicle with this plate is not parked")

	// ErrTransactionNotFound возвращается, когда у автомобиля нет открытой парковочной транзакции
	ErrTransactionNotFound = errors.New("get_fee_quote: no open transaction for this vehicle")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_fee_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_fee_quote: internal error")
)
