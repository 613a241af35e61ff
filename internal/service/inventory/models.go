package inventory

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ItemInput данные новой позиции
type ItemInput struct {
	Name            string
	Category        string
	CurrentQuantity int
	IdealQuantity   int
	Price           float64
	LowStockAlert   int
	Supplier        string
	ImageURL        string
}

// ItemPatch частичное обновление позиции
type ItemPatch struct {
	Name            *string
	Category        *string
	CurrentQuantity *int
	IdealQuantity   *int
	Price           *float64
	LowStockAlert   *int
	Supplier        *string
	ImageURL        *string
}

func validateItem(item *domain.InventoryItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(item.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if item.CurrentQuantity < 0 || item.IdealQuantity < 0 || item.LowStockAlert < 0 {
		return fmt.Errorf("%w: quantities must not be negative", ErrInvalidInput)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
