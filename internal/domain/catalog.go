package domain

// Service услуга салона из каталога
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"` // минуты
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}
