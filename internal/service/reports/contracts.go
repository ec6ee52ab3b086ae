package reports

import (
	"context"
	"time"

	"github.com/parkirc/parking-service/internal/domain"
)

// TransactionRepository интерфейс репозитория парковочных транзакций
type TransactionRepository interface {
	RevenueByPaymentMethod(ctx context.Context, start, end time.Time) ([]*domain.RevenueByMethod, error)
	OccupancyByDay(ctx context.Context, start, end time.Time) ([]*domain.OccupancyByDay, error)
	StatsByVehicleType(ctx context.Context, start, end time.Time) ([]*domain.VehicleTypeStat, error)
	CountEntriesByHour(ctx context.Context, start, end time.Time) ([]*domain.HourCount, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
