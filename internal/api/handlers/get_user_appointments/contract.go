package get_user_appointments

import "github.com/m04kA/SMC-SalonService/internal/domain"

type BookingEngine interface {
	AppointmentsByUser(userID string) []domain.Appointment
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
