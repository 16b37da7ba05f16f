package list_services

import (
	"context"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/catalog/models"
)

type CatalogService interface {
	ListServices(ctx context.Context, shopID int64) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
