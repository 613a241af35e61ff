package services

import "github.com/m04kA/SMC-SalonService/internal/service/catalog"

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// UpdateServiceRequest HTTP request model; отсутствующие поля не меняются
type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

func (r *CreateServiceRequest) ToServiceInput() catalog.ServiceInput {
	return catalog.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Duration:    r.Duration,
		Price:       r.Price,
		Category:    r.Category,
	}
}

func (r *UpdateServiceRequest) ToServicePatch() catalog.ServicePatch {
	return catalog.ServicePatch{
		Name:        r.Name,
		Description: r.Description,
		Duration:    r.Duration,
		Price:       r.Price,
		Category:    r.Category,
	}
}
