package history

import (
	"context"

	"github.com/parkirc/parking-service/internal/domain"
)

// TransactionRepository интерфейс репозитория парковочных транзакций
type TransactionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	ListWithFilter(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
