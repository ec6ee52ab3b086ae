package manage_shifts

import (
	"context"

	"github.com/parkirc/parking-service/internal/service/staff/models"
)

type StaffService interface {
	CreateShift(ctx context.Context, req *models.CreateShiftRequest) (*models.ShiftResponse, error)
	GetShift(ctx context.Context, id int64) (*models.ShiftResponse, error)
	ListShifts(ctx context.Context) (*models.ShiftListResponse, error)
	UpdateShift(ctx context.Context, id int64, req *models.UpdateShiftRequest) (*models.ShiftResponse, error)
	DeleteShift(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
