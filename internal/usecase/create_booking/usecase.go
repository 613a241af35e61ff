package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/booking"
)

// UseCase use case для создания записи и фиксации оплаты
type UseCase struct {
	engine             BookingEngine
	catalog            ServiceCatalog
	payments           PaymentRecorder
	advanceBookingDays int
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	engine BookingEngine,
	catalog ServiceCatalog,
	payments PaymentRecorder,
	advanceBookingDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		engine:             engine,
		catalog:            catalog,
		payments:           payments,
		advanceBookingDays: advanceBookingDays,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// SetTimeProvider подменяет источник времени
func (uc *UseCase) SetTimeProvider(tp TimeProvider) {
	uc.timeProvider = tp
}

// Execute выполняет use case создания записи.
// Ошибка фиксации оплаты логируется и не откатывает созданную запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, service=%s, slot=%s", req.UserID, req.ServiceID, req.SlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	method, _ := domain.ParsePaymentMethod(req.PaymentMethod)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().UTC()

	// 3. Получаем услугу
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		uc.logger.Warn("CreateBooking: service id=%s not found: %v", req.ServiceID, err)
		return nil, ErrServiceNotFound
	}

	// 4. Получаем слот
	slot, ok := uc.engine.Slot(req.SlotID)
	if !ok {
		uc.logger.Warn("CreateBooking: slot id=%s not found", req.SlotID)
		return nil, ErrSlotNotFound
	}

	// 5. Проверяем дату и время слота
	slotDate, err := time.Parse(domain.DateFormat, slot.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: slot id=%s has invalid date %q", slot.ID, slot.Date)
		return nil, fmt.Errorf("%w: invalid slot date: %v", ErrInternal, err)
	}
	if err := validateDate(slotDate, now, uc.advanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}
	if err := validateBookingTime(slotDate, slot.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// 6. Создаем запись, занимая место в слоте атомарно
	appointmentID, err := uc.engine.AddAppointment(ctx, booking.NewAppointment{
		UserID:    req.UserID,
		UserName:  req.UserName,
		ServiceID: service.ID,
		SlotID:    slot.ID,
		Notes:     req.Notes,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to add appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to add appointment: %v", ErrInternal, err)
	}
	if appointmentID == "" {
		uc.logger.Warn("CreateBooking: slot id=%s is not available", slot.ID)
		return nil, ErrSlotNotAvailable
	}

	appointment, ok := uc.engine.Appointment(appointmentID)
	if !ok {
		return nil, fmt.Errorf("%w: appointment id=%s disappeared after creation", ErrInternal, appointmentID)
	}

	// 7. Фиксируем оплату
	paymentID, err := uc.payments.RecordBookingPayment(ctx, domain.BookingEvent{
		AppointmentID: appointment.ID,
		UserID:        appointment.UserID,
		UserName:      appointment.UserName,
		Amount:        service.Price,
		Service:       service.Name,
		Date:          appointment.Date,
		Method:        method,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to record payment for appointment id=%s: %v", appointment.ID, err)
		paymentID = ""
	}

	uc.logger.Info("CreateBooking: appointment id=%s created for user=%s, payment=%s",
		appointment.ID, appointment.UserID, paymentID)

	return &Response{
		Appointment: appointment,
		Service:     *service,
		PaymentID:   paymentID,
	}, nil
}
