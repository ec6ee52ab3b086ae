package staff

import (
	"context"

	"github.com/parkirc/parking-service/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) (*domain.Shift, error)
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	List(ctx context.Context) ([]*domain.Shift, error)
	Update(ctx context.Context, shift *domain.Shift) error
	Delete(ctx context.Context, id int64) error
}

// OperatorRepository интерфейс репозитория операторов
type OperatorRepository interface {
	Create(ctx context.Context, operator *domain.Operator) (*domain.Operator, error)
	GetByID(ctx context.Context, id int64) (*domain.Operator, error)
	List(ctx context.Context) ([]*domain.Operator, error)
	Update(ctx context.Context, operator *domain.Operator) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
