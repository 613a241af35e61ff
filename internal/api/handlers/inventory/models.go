package inventory

import (
	inventoryService "github.com/m04kA/SMC-SalonService/internal/service/inventory"
)

// CreateItemRequest HTTP request model
type CreateItemRequest struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	CurrentQuantity int     `json:"currentQuantity"`
	IdealQuantity   int     `json:"idealQuantity"`
	Price           float64 `json:"price"`
	LowStockAlert   int     `json:"lowStockAlert"`
	Supplier        string  `json:"supplier,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
}

// UpdateItemRequest HTTP request model; отсутствующие поля не меняются
type UpdateItemRequest struct {
	Name            *string  `json:"name,omitempty"`
	Category        *string  `json:"category,omitempty"`
	CurrentQuantity *int     `json:"currentQuantity,omitempty"`
	IdealQuantity   *int     `json:"idealQuantity,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	LowStockAlert   *int     `json:"lowStockAlert,omitempty"`
	Supplier        *string  `json:"supplier,omitempty"`
	ImageURL        *string  `json:"imageUrl,omitempty"`
}

// RestockRequest HTTP request model
type RestockRequest struct {
	Quantity int `json:"quantity"`
}

func (r *CreateItemRequest) ToItemInput() inventoryService.ItemInput {
	return inventoryService.ItemInput{
		Name:            r.Name,
		Category:        r.Category,
		CurrentQuantity: r.CurrentQuantity,
		IdealQuantity:   r.IdealQuantity,
		Price:           r.Price,
		LowStockAlert:   r.LowStockAlert,
		Supplier:        r.Supplier,
		ImageURL:        r.ImageURL,
	}
}

func (r *UpdateItemRequest) ToItemPatch() inventoryService.ItemPatch {
	return inventoryService.ItemPatch{
		Name:            r.Name,
		Category:        r.Category,
		CurrentQuantity: r.CurrentQuantity,
		IdealQuantity:   r.IdealQuantity,
		Price:           r.Price,
		LowStockAlert:   r.LowStockAlert,
		Supplier:        r.Supplier,
		ImageURL:        r.ImageURL,
	}
}
