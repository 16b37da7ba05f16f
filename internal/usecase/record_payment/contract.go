package record_payment

import (
	"context"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

// AppointmentRepository is the appointment storage interface
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	ConfirmIfPending(ctx context.Context, id int64) (bool, error)
}

// PaymentRepository is the payment storage interface
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
}

// CatalogRepository resolves the shop for owner notifications
type CatalogRepository interface {
	GetShop(ctx context.Context, id int64) (*domain.Shop, error)
}

// TransactionManager runs the payment write-set atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers best-effort user notifications
type Notifier interface {
	Notify(kind string, userID int64, title, message string, appointmentID *int64)
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
