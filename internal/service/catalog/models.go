package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ServiceInput данные для создания услуги
type ServiceInput struct {
	Name        string
	Description string
	Duration    int
	Price       float64
	Category    string
}

// ServicePatch частичное обновление услуги
type ServicePatch struct {
	Name        *string
	Description *string
	Duration    *int
	Price       *float64
	Category    *string
}

// DefaultServices демо-каталог, которым заполняется пустое хранилище
func DefaultServices() []ServiceInput {
	return []ServiceInput{
		{Name: "Haircut", Description: "Professional haircut and styling", Duration: 45, Price: 45, Category: "hair"},
		{Name: "Hair Coloring", Description: "Full hair coloring service", Duration: 120, Price: 90, Category: "hair"},
		{Name: "Manicure", Description: "Classic manicure with polish", Duration: 30, Price: 35, Category: "nails"},
		{Name: "Facial", Description: "Rejuvenating facial treatment", Duration: 60, Price: 70, Category: "skin"},
	}
}

func validateService(s *domain.Service) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if s.Duration < domain.MinSlotDurationMinutes || s.Duration > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if s.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if strings.TrimSpace(s.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	return nil
}
