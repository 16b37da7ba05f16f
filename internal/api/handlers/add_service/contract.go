package add_service

import (
	"context"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/catalog/models"
)

type CatalogService interface {
	AddService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
