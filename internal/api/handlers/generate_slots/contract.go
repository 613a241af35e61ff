package generate_slots

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type BookingEngine interface {
	GenerateSlots(ctx context.Context, date string, slotDurationMinutes int) error
	SlotsByDate(date string) []domain.TimeSlot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
