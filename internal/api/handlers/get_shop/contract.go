package get_shop

import (
	"context"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/catalog/models"
)

type CatalogService interface {
	GetShop(ctx context.Context, id int64) (*models.ShopResponse, error)
	GetShopByOwner(ctx context.Context, ownerID int64) (*models.ShopResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
