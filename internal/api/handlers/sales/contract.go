package sales

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type PaymentService interface {
	UpdateStatus(ctx context.Context, paymentID string, status domain.PaymentStatus) error
	ByUser(userID string) []domain.Payment
	ByDate(date string) []domain.Payment
	ByDateRange(from, to string) []domain.Payment
	ByAppointment(appointmentID string) []domain.Payment
	DailySalesTotal(date string) float64
	MonthlySalesTotal(year, month int) float64
	YearlySalesTotal(year int) float64
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
