package create_shop

import (
	"context"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/catalog/models"
)

type CatalogService interface {
	CreateShop(ctx context.Context, req *models.CreateShopRequest) (*models.ShopResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
