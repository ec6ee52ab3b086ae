package process_exit

import (
	"context"

	processExit "github.com/parkirc/parking-service/internal/usecase/process_exit"
)

type ProcessExitUseCase interface {
	Execute(ctx context.Context, req *processExit.Request) (*processExit.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
