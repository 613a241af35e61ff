package dashboard

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/payments"
)

// BookingEngine часть движка бронирования, нужная для отчета
type BookingEngine interface {
	EnsureSlots(ctx context.Context, date string) error
	AppointmentsByDate(date string) []domain.Appointment
	SlotsByDate(date string) []domain.TimeSlot
}

// SalesReader суммы продаж
type SalesReader interface {
	DailySalesTotal(date string) float64
	DailySeries(end string, days int) ([]payments.DailyTotal, error)
}

// RatingReader средние оценки
type RatingReader interface {
	AverageRating() float64
}

// StockReader позиции склада с низким остатком
type StockReader interface {
	LowStock() []domain.InventoryItem
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
