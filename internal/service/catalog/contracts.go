package catalog

import (
	"context"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

// CatalogRepository is the shop and service storage interface
type CatalogRepository interface {
	CreateShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error)
	UpdateShop(ctx context.Context, shop *domain.Shop) error
	GetShop(ctx context.Context, id int64) (*domain.Shop, error)
	GetShopByOwner(ctx context.Context, ownerID int64) (*domain.Shop, error)
	SearchShops(ctx context.Context, areaPrefix string) ([]*domain.Shop, error)
	CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error)
	ListServices(ctx context.Context, shopID int64) ([]*domain.Service, error)
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
