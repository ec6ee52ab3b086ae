package operator

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrOperatorNotFound оператор не найден
	ErrOperatorNotFound = errors.New("operator.repository: operator not found")
	// ErrDuplicateEmail оператор с таким email уже существует
	ErrDuplicateEmail = errors.New("operator.repository: operator with this email already exists")
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("operator.repository: failed to build query")
	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("operator.repository: failed to execute query")
	// ErrScanRow ошибка сканирования результата запроса
	ErrScanRow = errors.New("operator.repository: failed to scan row")
)

// isUniqueViolation проверяет ошибку нарушения уникальности (код 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
