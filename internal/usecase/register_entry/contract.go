package register_entry

import (
	"context"
	"time"

	"github.com/parkirc/parking-service/internal/domain"
	"github.com/parkirc/parking-service/internal/integrations/gateservice"
)

// SpaceRepository интерфейс репозитория парковочных мест
type SpaceRepository interface {
	ListFreeByType(ctx context.Context, vehicleType string) ([]*domain.ParkingSpace, error)
	MarkOccupied(ctx context.Context, spaceID, vehicleID int64, at time.Time) error
}

// VehicleRepository интерфейс репозитория транспортных средств
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetParkedByPlate(ctx context.Context, plateNumber string) (*domain.Vehicle, error)
}

// TransactionRepository интерфейс репозитория парковочных транзакций
type TransactionRepository interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
}

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	ListActive(ctx context.Context) ([]*domain.Shift, error)
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
	NotifyEntryWithGracefulDegradation(ctx context.Context, job gateservice.TicketPrintJob) error
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
