package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// PaymentStatus represents the payment state of an appointment
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Appointment represents a client appointment bound to a time slot
type Appointment struct {
	ID            string            `json:"id"`
	UserID        string            `json:"userId"`
	UserName      string            `json:"userName"`
	ServiceID     string            `json:"serviceId"`
	ServiceName   string            `json:"serviceName"`
	SlotID        string            `json:"slotId"`
	Date          string            `json:"date"`
	StartTime     types.TimeString  `json:"startTime"`
	EndTime       types.TimeString  `json:"endTime"`
	Status        AppointmentStatus `json:"status"`
	PaymentStatus PaymentStatus     `json:"paymentStatus"`
	Notes         *string           `json:"notes,omitempty"`

	// SlotReleased выставляется, когда место в слоте уже возвращено
	SlotReleased bool `json:"slotReleased"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsTerminal returns true if no further transitions are allowed
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCancelled || a.Status == StatusCompleted
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo проверяет допустимость перехода статуса
// pending -> confirmed, pending/confirmed -> completed, pending/confirmed -> cancelled
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch next {
	case StatusConfirmed:
		return a.Status == StatusPending
	case StatusCompleted, StatusCancelled:
		return a.Status == StatusPending || a.Status == StatusConfirmed
	default:
		return false
	}
}

// ParseAppointmentStatus конвертирует строку в AppointmentStatus с валидацией
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	status := AppointmentStatus(s)
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return status, true
	default:
		return "", false
	}
}

// ParsePaymentStatus конвертирует строку в PaymentStatus с валидацией
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	status := PaymentStatus(s)
	switch status {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return status, true
	default:
		return "", false
	}
}
