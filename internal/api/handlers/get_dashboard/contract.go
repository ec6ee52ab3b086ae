package get_dashboard

import (
	"context"

	"github.com/parkirc/parking-service/internal/service/dashboard/models"
)

type DashboardService interface {
	Snapshot(ctx context.Context) (*models.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
