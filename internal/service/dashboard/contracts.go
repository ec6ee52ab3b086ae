package dashboard

import (
	"context"
	"time"

	"github.com/parkirc/parking-service/internal/domain"
)

// SpaceRepository интерфейс репозитория парковочных мест
type SpaceRepository interface {
	CountByOccupancy(ctx context.Context) (total int64, occupied int64, err error)
}

// VehicleRepository интерфейс репозитория транспортных средств
type VehicleRepository interface {
	CountParkedByType(ctx context.Context) ([]*domain.VehicleTypeStat, error)
}

// TransactionRepository интерфейс репозитория парковочных транзакций
type TransactionRepository interface {
	SumRevenueBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountEntriesByHour(ctx context.Context, start, end time.Time) ([]*domain.HourCount, error)
	ListWithFilter(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
