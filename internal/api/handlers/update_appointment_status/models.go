package update_appointment_status

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UpdateStatusRequest HTTP request model. Хотя бы одно поле обязательно.
type UpdateStatusRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
}

// Parse проверяет и конвертирует статусы
func (r *UpdateStatusRequest) Parse() (*domain.AppointmentStatus, *domain.PaymentStatus, error) {
	if r.Status == nil && r.PaymentStatus == nil {
		return nil, nil, errors.New("status or paymentStatus is required")
	}

	var status *domain.AppointmentStatus
	if r.Status != nil {
		parsed, ok := domain.ParseAppointmentStatus(*r.Status)
		if !ok {
			return nil, nil, fmt.Errorf("unknown status %q", *r.Status)
		}
		status = &parsed
	}

	var payment *domain.PaymentStatus
	if r.PaymentStatus != nil {
		parsed, ok := domain.ParsePaymentStatus(*r.PaymentStatus)
		if !ok {
			return nil, nil, fmt.Errorf("unknown payment status %q", *r.PaymentStatus)
		}
		payment = &parsed
	}

	return status, payment, nil
}
