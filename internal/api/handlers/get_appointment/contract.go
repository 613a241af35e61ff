package get_appointment

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type BookingEngine interface {
	AppointmentDetails(ctx context.Context, appointmentID string) (*domain.Appointment, *domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
