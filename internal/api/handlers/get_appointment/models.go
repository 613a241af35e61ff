package get_appointment

import "github.com/m04kA/SMC-SalonService/internal/domain"

// AppointmentDetailsResponse запись вместе с услугой из каталога
type AppointmentDetailsResponse struct {
	Appointment domain.Appointment `json:"appointment"`
	Service     *domain.Service    `json:"service,omitempty"` // nil, если услуга удалена из каталога
}
