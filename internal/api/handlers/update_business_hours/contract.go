package update_business_hours

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/booking"
)

type BookingEngine interface {
	UpdateBusinessHour(ctx context.Context, dayOfWeek int, patch booking.BusinessHoursPatch) (*domain.BusinessHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
