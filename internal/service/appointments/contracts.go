package appointments

import (
	"context"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

// AppointmentRepository is the appointment storage interface
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetByShopID(ctx context.Context, shopID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// CatalogRepository resolves shops for ownership checks
type CatalogRepository interface {
	GetShop(ctx context.Context, id int64) (*domain.Shop, error)
}

// Notifier delivers best-effort user notifications
type Notifier interface {
	Notify(kind string, userID int64, title, message string, appointmentID *int64)
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
