package rate

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда тарифная сетка не найдена
	ErrScheduleNotFound = errors.New("rate.repository: rate schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rate.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rate.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rate.repository: failed to scan row")
)
