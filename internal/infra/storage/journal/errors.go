package journal

import "errors"

var (
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("journal.repository: failed to build query")
	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("journal.repository: failed to execute query")
	// ErrScanRow ошибка сканирования результата запроса
	ErrScanRow = errors.New("journal.repository: failed to scan row")
)
