package get_business_hours

import "github.com/m04kA/SMC-SalonService/internal/domain"

type BookingEngine interface {
	BusinessHours() []domain.BusinessHours
}

type Logger interface {
	Info(format string, v ...interface{})
}
