package rates

import (
	"context"
	"time"

	"github.com/parkirc/parking-service/internal/domain"
)

// RateRepository интерфейс репозитория тарифных сеток
type RateRepository interface {
	Create(ctx context.Context, schedule *domain.RateSchedule) (*domain.RateSchedule, error)
	GetByID(ctx context.Context, id int64) (*domain.RateSchedule, error)
	List(ctx context.Context) ([]*domain.RateSchedule, error)
	ListEffective(ctx context.Context, vehicleType string, at time.Time) ([]*domain.RateSchedule, error)
	Update(ctx context.Context, schedule *domain.RateSchedule) error
	Delete(ctx context.Context, id int64) error
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
