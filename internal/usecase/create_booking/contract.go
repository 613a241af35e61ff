package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/booking"
)

// BookingEngine интерфейс движка бронирования
type BookingEngine interface {
	Slot(slotID string) (domain.TimeSlot, bool)
	AddAppointment(ctx context.Context, req booking.NewAppointment) (string, error)
	Appointment(appointmentID string) (domain.Appointment, bool)
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	GetService(ctx context.Context, id string) (*domain.Service, error)
}

// PaymentRecorder интерфейс учета оплат
type PaymentRecorder interface {
	RecordBookingPayment(ctx context.Context, event domain.BookingEvent) (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
