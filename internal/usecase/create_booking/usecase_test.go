package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
	"github.com/m04kA/SMC-SalonService/internal/service/booking"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/payments"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type failingPayments struct{}

func (failingPayments) RecordBookingPayment(context.Context, domain.BookingEvent) (string, error) {
	return "", errors.New("ledger unavailable")
}

type fixture struct {
	uc       *UseCase
	engine   *booking.Engine
	payments *payments.Service
	service  *domain.Service
	slots    []domain.TimeSlot
}

// 2025-01-13 понедельник, часы 09:00-18:00 по умолчанию
func newFixture(t *testing.T, now time.Time, recorder PaymentRecorder) *fixture {
	t.Helper()
	ctx := context.Background()
	store := document.NewMemoryRepository()
	log := logger.NewNop()

	services := catalog.NewService(store, log)
	haircut, err := services.Create(ctx, catalog.ServiceInput{Name: "Haircut", Duration: 45, Price: 45, Category: "hair"})
	require.NoError(t, err)

	engine := booking.NewEngine(booking.Config{MaxBookingsPerSlot: 1}, services, store, nil, log)
	require.NoError(t, engine.GenerateSlots(ctx, "2025-01-13", 30))

	paymentService := payments.NewService(store, log)
	if recorder == nil {
		recorder = paymentService
	}

	uc := NewUseCase(engine, services, recorder, 14, log)
	uc.SetTimeProvider(fixedTime{t: now})

	return &fixture{
		uc:       uc,
		engine:   engine,
		payments: paymentService,
		service:  haircut,
		slots:    engine.SlotsByDate("2025-01-13"),
	}
}

func TestExecuteCreatesAppointmentAndPayment(t *testing.T) {
	f := newFixture(t, time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC), nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:        "u1",
		UserName:      "Anna",
		ServiceID:     f.service.ID,
		SlotID:        f.slots[0].ID,
		Notes:         ptr.Ptr("first visit"),
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, resp.Appointment.Status)
	assert.Equal(t, "Haircut", resp.Appointment.ServiceName)
	require.NotEmpty(t, resp.PaymentID)

	recorded := f.payments.ByAppointment(resp.Appointment.ID)
	require.Len(t, recorded, 1)
	assert.Equal(t, 45.0, recorded[0].Amount)
	assert.Equal(t, "2025-01-13", recorded[0].Date)
	assert.Equal(t, domain.MethodCash, recorded[0].PaymentMethod)
}

func TestExecuteSlotFull(t *testing.T) {
	f := newFixture(t, time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC), nil)
	req := &Request{UserID: "u1", ServiceID: f.service.ID, SlotID: f.slots[0].ID}

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	req.UserID = "u2"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, f.engine.Appointments(), 1)
	assert.Len(t, f.payments.ByDate("2025-01-13"), 1)
}

func TestExecuteValidation(t *testing.T) {
	f := newFixture(t, time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC), nil)
	ctx := context.Background()

	cases := []struct {
		name string
		req  *Request
		err  error
	}{
		{name: "missing user", req: &Request{ServiceID: f.service.ID, SlotID: f.slots[0].ID}, err: ErrInvalidInput},
		{name: "bad method", req: &Request{UserID: "u1", ServiceID: f.service.ID, SlotID: f.slots[0].ID, PaymentMethod: "barter"}, err: ErrInvalidInput},
		{name: "unknown service", req: &Request{UserID: "u1", ServiceID: "nope", SlotID: f.slots[0].ID}, err: ErrServiceNotFound},
		{name: "unknown slot", req: &Request{UserID: "u1", ServiceID: f.service.ID, SlotID: "nope"}, err: ErrSlotNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Execute(ctx, tc.req)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestExecuteDateChecks(t *testing.T) {
	ctx := context.Background()

	past := newFixture(t, time.Date(2025, 1, 14, 10, 0, 0, 0, time.UTC), nil)
	_, err := past.uc.Execute(ctx, &Request{UserID: "u1", ServiceID: past.service.ID, SlotID: past.slots[0].ID})
	assert.ErrorIs(t, err, ErrInvalidDate)

	tooFar := newFixture(t, time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC), nil)
	_, err = tooFar.uc.Execute(ctx, &Request{UserID: "u1", ServiceID: tooFar.service.ID, SlotID: tooFar.slots[0].ID})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)

	sameDay := newFixture(t, time.Date(2025, 1, 13, 10, 15, 0, 0, time.UTC), nil)
	_, err = sameDay.uc.Execute(ctx, &Request{UserID: "u1", ServiceID: sameDay.service.ID, SlotID: sameDay.slots[0].ID})
	assert.ErrorIs(t, err, ErrTooLateToBook)

	// 10:30 еще не начался
	_, err = sameDay.uc.Execute(ctx, &Request{UserID: "u1", ServiceID: sameDay.service.ID, SlotID: sameDay.slots[3].ID})
	assert.NoError(t, err)
}

func TestExecutePaymentFailureKeepsAppointment(t *testing.T) {
	f := newFixture(t, time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC), failingPayments{})

	resp, err := f.uc.Execute(context.Background(), &Request{UserID: "u1", ServiceID: f.service.ID, SlotID: f.slots[0].ID})
	require.NoError(t, err)
	assert.Empty(t, resp.PaymentID)

	_, ok := f.engine.Appointment(resp.Appointment.ID)
	assert.True(t, ok)
}

func TestExecuteJudgesStartTimeInUTC(t *testing.T) {
	// 11:00 в UTC+3 это 08:00 по UTC, слот 09:00 еще не начался
	moscow := time.FixedZone("UTC+3", 3*60*60)
	f := newFixture(t, time.Date(2025, 1, 13, 11, 0, 0, 0, moscow), nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:        "u1",
		UserName:      "Anna",
		ServiceID:     f.service.ID,
		SlotID:        f.slots[0].ID,
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Appointment.ID)
	assert.Equal(t, types.TimeString("09:00"), resp.Appointment.StartTime)
}
