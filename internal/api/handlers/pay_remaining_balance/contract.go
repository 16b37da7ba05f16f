package pay_remaining_balance

import (
	"context"

	recordPayment "github.com/kalathiyadhruv74-afk/BookMyCut/internal/usecase/record_payment"
)

type PayRemainingUseCase interface {
	PayRemaining(ctx context.Context, req *recordPayment.RemainingRequest) (*recordPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
