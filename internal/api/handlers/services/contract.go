package services

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

type CatalogService interface {
	List(ctx context.Context) []domain.Service
	ListByCategory(ctx context.Context, category string) []domain.Service
	GetService(ctx context.Context, id string) (*domain.Service, error)
	Create(ctx context.Context, input catalog.ServiceInput) (*domain.Service, error)
	Update(ctx context.Context, id string, patch catalog.ServicePatch) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
