package cancel_appointment

import (
	"context"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

type AppointmentsService interface {
	Cancel(ctx context.Context, id int64, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
