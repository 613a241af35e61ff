package inventory

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	inventoryService "github.com/m04kA/SMC-SalonService/internal/service/inventory"
)

type InventoryService interface {
	Add(ctx context.Context, input inventoryService.ItemInput) (*domain.InventoryItem, error)
	Update(ctx context.Context, id string, patch inventoryService.ItemPatch) (*domain.InventoryItem, error)
	Restock(ctx context.Context, id string, quantity int) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id string) error
	Get(id string) (*domain.InventoryItem, error)
	List() []domain.InventoryItem
	ByCategory(category string) []domain.InventoryItem
	LowStock() []domain.InventoryItem
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
