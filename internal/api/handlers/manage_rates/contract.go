package manage_rates

import (
	"context"

	"github.com/parkirc/parking-service/internal/service/rates/models"
)

type RatesService interface {
	CreateSchedule(ctx context.Context, req *models.CreateScheduleRequest) (*models.ScheduleResponse, error)
	GetSchedule(ctx context.Context, id int64) (*models.ScheduleResponse, error)
	ListSchedules(ctx context.Context) (*models.ScheduleListResponse, error)
	ListEffectiveSchedules(ctx context.Context, vehicleType string) (*models.ScheduleListResponse, error)
	UpdateSchedule(ctx context.Context, id int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
