package cancel_appointment

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type BookingEngine interface {
	Appointment(appointmentID string) (domain.Appointment, bool)
	CancelAppointment(ctx context.Context, appointmentID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
