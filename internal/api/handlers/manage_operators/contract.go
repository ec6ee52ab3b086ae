package manage_operators

import (
	"context"

	"github.com/parkirc/parking-service/internal/service/staff/models"
)

type StaffService interface {
	CreateOperator(ctx context.Context, req *models.CreateOperatorRequest) (*models.OperatorResponse, error)
	GetOperator(ctx context.Context, id int64) (*models.OperatorResponse, error)
	ListOperators(ctx context.Context) (*models.OperatorListResponse, error)
	UpdateOperator(ctx context.Context, id int64, req *models.UpdateOperatorRequest) (*models.OperatorResponse, error)
	DeleteOperator(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
