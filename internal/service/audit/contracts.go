package audit

import (
	"context"

	"github.com/parkirc/parking-service/internal/domain"
)

// JournalRepository интерфейс репозитория журнала операций
type JournalRepository interface {
	List(ctx context.Context, filter domain.JournalFilter) ([]*domain.JournalEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
