package get_available_slots

import (
	"context"
	"time"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

// AppointmentRepository loads the shop-day appointments the grid is
// checked against.
type AppointmentRepository interface {
	GetByShopAndDate(ctx context.Context, filter domain.ShopDayFilter) ([]*domain.Appointment, error)
}

// CatalogRepository resolves the shop and the selected services.
type CatalogRepository interface {
	GetShop(ctx context.Context, id int64) (*domain.Shop, error)
	GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
