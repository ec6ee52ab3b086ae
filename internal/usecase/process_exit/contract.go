package process_exit

import (
	"context"
	"time"

	"github.com/parkirc/parking-service/internal/domain"
	"github.com/parkirc/parking-service/internal/integrations/gateservice"
	pricingModels "github.com/parkirc/parking-service/internal/service/pricing/models"
)

// SpaceRepository интерфейс репозитория парковочных мест
type SpaceRepository interface {
	Release(ctx context.Context, spaceID int64, at time.Time) error
}

// VehicleRepository интерфейс репозитория транспортных средств
type VehicleRepository interface {
	GetParkedByPlate(ctx context.Context, plateNumber string) (*domain.Vehicle, error)
	MarkExited(ctx context.Context, id int64, exitTime time.Time) error
}

// TransactionRepository интерфейс репозитория парковочных транзакций
type TransactionRepository interface {
	GetOpenByVehicleID(ctx context.Context, vehicleID int64) (*domain.Transaction, error)
	Close(ctx context.Context, id int64, exitTime time.Time, amount int64, paymentMethod string) error
}

// RateRepository интерфейс репозитория тарифных сеток
type RateRepository interface {
	ListEffective(ctx context.Context, vehicleType string, at time.Time) ([]*domain.RateSchedule, error)
}

// PricingService интерфейс сервиса расчета стоимости стоянки
type PricingService interface {
	Calculate(schedule *domain.RateSchedule, fallbackHourlyRate int64, entryTime, exitTime time.Time) (*pricingModels.FeeBreakdown, error)
}

// OperatorRepository интерфейс репозитория операторов
type OperatorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Operator, error)
}

// JournalRepository интерфейс репозитория журнала операций
type JournalRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
}

// GateServiceClient интерфейс клиента контроллера шлагбаума
type GateServiceClient interface {
	NotifyExitWithGracefulDegradation(ctx context.Context, job gateservice.ReceiptPrintJob) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
