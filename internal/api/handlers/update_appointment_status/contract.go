package update_appointment_status

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type BookingEngine interface {
	Appointment(appointmentID string) (domain.Appointment, bool)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) error
	UpdatePaymentStatus(ctx context.Context, appointmentID string, status domain.PaymentStatus) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
