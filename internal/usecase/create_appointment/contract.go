package create_appointment

import (
	"context"
	"time"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

// AppointmentRepository is the appointment storage interface
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByShopAndDate(ctx context.Context, filter domain.ShopDayFilter) ([]*domain.Appointment, error)
}

// CatalogRepository resolves the shop and the selected services
type CatalogRepository interface {
	GetShop(ctx context.Context, id int64) (*domain.Shop, error)
	GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// TransactionManager runs the conflict check and the insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers best-effort user notifications
type Notifier interface {
	Notify(kind string, userID int64, title, message string, appointmentID *int64)
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
