package search_shops

import (
	"context"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/catalog/models"
)

type CatalogService interface {
	SearchShops(ctx context.Context, areaPrefix string) (*models.ShopListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
