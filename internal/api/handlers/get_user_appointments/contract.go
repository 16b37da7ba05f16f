package get_user_appointments

import (
	"context"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
