package get_journal

import (
	"context"

	"github.com/parkirc/parking-service/internal/service/audit/models"
)

type AuditService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
