package get_history

import (
	"context"

	"github.com/parkirc/parking-service/internal/service/history/models"
)

type HistoryService interface {
	Get(ctx context.Context, id int64) (*models.TransactionResponse, error)
	List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error)
	ExportCSV(ctx context.Context, req *models.ListRequest) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
