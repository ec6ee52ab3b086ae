package get_fee_quote

import (
	"context"
	"time"

	"github.com/parkirc/parking-service/internal/domain"
	pricingModels "github.com/parkirc/parking-service/internal/service/pricing/models"
)

// VehicleRepository интерфейс репозитория транспортных средств
type VehicleRepository interface {
	GetParkedByPlate(ctx context.Context, plateNumber string) (*domain.Vehicle, error)
}

// TransactionRepository интерфейс репозитория парковочных транзакций
type TransactionRepository interface {
	GetOpenByVehicleID(ctx context.Context, vehicleID int64) (*domain.Transaction, error)
}

// RateRepository интерфейс репозитория тарифных сеток
type RateRepository interface {
	ListEffective(ctx context.Context, vehicleType string, at time.Time) ([]*domain.RateSchedule, error)
}

// PricingService интерфейс сервиса расчета стоимости стоянки
type PricingService interface {
	Calculate(schedule *domain.RateSchedule, fallbackHourlyRate int64, entryTime, exitTime time.Time) (*pricingModels.FeeBreakdown, error)
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
