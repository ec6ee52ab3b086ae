package get_fee_quote

import (
	"context"

	getFeeQuote "github.com/parkirc/parking-service/internal/usecase/get_fee_quote"
)

type GetFeeQuoteUseCase interface {
	Execute(ctx context.Context, req *getFeeQuote.Request) (*getFeeQuote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
