package domain

// InventoryItem позиция складского учета
type InventoryItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	CurrentQuantity int     `json:"currentQuantity"`
	IdealQuantity   int     `json:"idealQuantity"`
	Price           float64 `json:"price"`
	LowStockAlert   int     `json:"lowStockAlert"`
	Supplier        string  `json:"supplier,omitempty"`
	LastRestocked   string  `json:"lastRestocked,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
}

// IsLowStock returns true if the quantity reached the alert threshold
func (i *InventoryItem) IsLowStock() bool {
	return i.CurrentQuantity <= i.LowStockAlert
}

// ShortfallQuantity returns how many units are missing up to the ideal quantity
func (i *InventoryItem) ShortfallQuantity() int {
	if i.CurrentQuantity >= i.IdealQuantity {
		return 0
	}
	return i.IdealQuantity - i.CurrentQuantity
}
