package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
	"github.com/m04kA/SMC-SalonService/internal/service/booking"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/inventory"
	"github.com/m04kA/SMC-SalonService/internal/service/payments"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type fixedRating float64

func (r fixedRating) AverageRating() float64 { return float64(r) }

// 2025-01-13 понедельник
const monday = "2025-01-13"

func TestDaily(t *testing.T) {
	ctx := context.Background()
	store := document.NewMemoryRepository()
	log := logger.NewNop()

	services := catalog.NewService(store, log)
	haircut, err := services.Create(ctx, catalog.ServiceInput{Name: "Haircut", Duration: 45, Price: 45, Category: "hair"})
	require.NoError(t, err)

	engine := booking.NewEngine(booking.Config{}, services, store, nil, log)
	sales := payments.NewService(store, log)
	stock := inventory.NewService(store, log)

	require.NoError(t, engine.GenerateSlots(ctx, monday, 0))
	slots := engine.SlotsByDate(monday)
	require.Len(t, slots, 18)

	first, err := engine.AddAppointment(ctx, booking.NewAppointment{UserID: "u1", ServiceID: haircut.ID, SlotID: slots[0].ID})
	require.NoError(t, err)
	second, err := engine.AddAppointment(ctx, booking.NewAppointment{UserID: "u2", ServiceID: haircut.ID, SlotID: slots[0].ID})
	require.NoError(t, err)
	require.NoError(t, engine.UpdateAppointmentStatus(ctx, first, domain.StatusConfirmed))
	require.NoError(t, engine.CancelAppointment(ctx, second))

	_, err = sales.RecordBookingPayment(ctx, domain.BookingEvent{AppointmentID: first, UserID: "u1", Amount: 45, Date: monday})
	require.NoError(t, err)
	_, err = sales.RecordBookingPayment(ctx, domain.BookingEvent{AppointmentID: "old", UserID: "u3", Amount: 30, Date: "2025-01-10"})
	require.NoError(t, err)

	_, err = stock.Add(ctx, inventory.ItemInput{Name: "Shampoo", Category: "hair", CurrentQuantity: 1, IdealQuantity: 10, LowStockAlert: 3})
	require.NoError(t, err)

	svc := NewService(engine, sales, fixedRating(4.5), stock, log)
	report, err := svc.Daily(ctx, monday)
	require.NoError(t, err)

	assert.Equal(t, AppointmentStats{Total: 2, Confirmed: 1, Cancelled: 1}, report.Appointments)
	assert.Equal(t, 45.0, report.DailySales)
	assert.Equal(t, 4.5, report.AverageRating)
	require.Len(t, report.LowStockItems, 1)
	assert.Len(t, report.Slots, 18)
	assert.Equal(t, 1, report.Slots[0].CurrentBookings)

	require.Len(t, report.SalesSeries, domain.SalesSeriesDays)
	assert.Equal(t, "2025-01-07", report.SalesSeries[0].Date)
	assert.Equal(t, payments.DailyTotal{Date: "2025-01-10", Total: 30}, report.SalesSeries[3])
	assert.Equal(t, payments.DailyTotal{Date: monday, Total: 45}, report.SalesSeries[6])
}

func TestDailyInvalidDate(t *testing.T) {
	store := document.NewMemoryRepository()
	log := logger.NewNop()
	engine := booking.NewEngine(booking.Config{}, catalog.NewService(store, log), store, nil, log)

	svc := NewService(engine, payments.NewService(store, log), fixedRating(0), inventory.NewService(store, log), log)
	_, err := svc.Daily(context.Background(), "yesterday")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDailyKeepsCustomSlots(t *testing.T) {
	ctx := context.Background()
	store := document.NewMemoryRepository()
	log := logger.NewNop()

	services := catalog.NewService(store, log)
	facial, err := services.Create(ctx, catalog.ServiceInput{Name: "Facial", Duration: 60, Price: 70, Category: "skin"})
	require.NoError(t, err)

	engine := booking.NewEngine(booking.Config{}, services, store, nil, log)
	require.NoError(t, engine.GenerateSlots(ctx, monday, 60))
	slots := engine.SlotsByDate(monday)
	require.Len(t, slots, 9)

	id, err := engine.AddAppointment(ctx, booking.NewAppointment{UserID: "u1", ServiceID: facial.ID, SlotID: slots[2].ID})
	require.NoError(t, err)

	svc := NewService(engine, payments.NewService(store, log), fixedRating(0), inventory.NewService(store, log), log)
	report, err := svc.Daily(ctx, monday)
	require.NoError(t, err)

	require.Len(t, report.Slots, 9)
	assert.Equal(t, slots[2].ID, report.Slots[2].ID)
	assert.Equal(t, 1, report.Slots[2].CurrentBookings)

	appointment, ok := engine.Appointment(id)
	require.True(t, ok)
	_, ok = engine.Slot(appointment.SlotID)
	assert.True(t, ok)
}
