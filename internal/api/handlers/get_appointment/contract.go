package get_appointment

import (
	"context"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
