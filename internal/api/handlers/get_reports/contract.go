package get_reports

import (
	"context"
	"time"

	"github.com/parkirc/parking-service/internal/service/reports/models"
)

type ReportsService interface {
	Revenue(ctx context.Context, start, end time.Time) (*models.RevenueReport, error)
	RevenueCSV(ctx context.Context, start, end time.Time) ([]byte, error)
	Occupancy(ctx context.Context, start, end time.Time) (*models.OccupancyReport, error)
	VehicleTypes(ctx context.Context, start, end time.Time) (*models.VehicleTypeReport, error)
	PeakHours(ctx context.Context, start, end time.Time) (*models.PeakHoursReport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
