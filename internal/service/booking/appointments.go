package booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
)

// AddAppointment создает запись на слот.
// Проверка вместимости, занятие места и создание записи выполняются атомарно.
// Если слот или услуга не найдены либо слот заполнен, возвращается пустой id без побочных эффектов.
func (e *Engine) AddAppointment(ctx context.Context, req NewAppointment) (string, error) {
	service, err := e.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		e.logger.Warn("AddAppointment: service id=%s not resolved: %v", req.ServiceID, err)
		return "", nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.slots[req.SlotID]; !ok {
		e.logger.Warn("AddAppointment: slot id=%s not found", req.SlotID)
		return "", nil
	}

	now := e.now()
	var created *domain.Appointment

	booked, err := e.bookSlotLocked(ctx, req.SlotID, func(batch *document.Batch, slot *domain.TimeSlot) error {
		created = &domain.Appointment{
			ID:            e.newID(),
			UserID:        req.UserID,
			UserName:      req.UserName,
			ServiceID:     service.ID,
			ServiceName:   service.Name,
			SlotID:        slot.ID,
			Date:          slot.Date,
			StartTime:     slot.StartTime,
			EndTime:       slot.EndTime,
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentPending,
			Notes:         req.Notes,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := batch.Put(domain.KindAppointment, created.ID, created); err != nil {
			return fmt.Errorf("%w: AddAppointment - %v", ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if !booked {
		e.logger.Info("AddAppointment: slot id=%s rejected booking for user=%s", req.SlotID, req.UserID)
		return "", nil
	}

	e.appointments[created.ID] = created
	e.logger.Info("AddAppointment: created appointment id=%s user=%s service=%s slot=%s",
		created.ID, created.UserID, created.ServiceID, created.SlotID)
	return created.ID, nil
}

// CancelAppointment отменяет запись и освобождает место в слоте ровно один раз.
// Неизвестная запись и записи в терминальном статусе не изменяются.
func (e *Engine) CancelAppointment(ctx context.Context, appointmentID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	appointment, ok := e.appointments[appointmentID]
	if !ok {
		e.logger.Warn("CancelAppointment: appointment id=%s not found", appointmentID)
		return nil
	}
	if appointment.IsTerminal() {
		e.logger.Info("CancelAppointment: appointment id=%s already %s", appointmentID, appointment.Status)
		return nil
	}

	return e.cancelAppointmentLocked(ctx, appointment)
}

// cancelAppointmentLocked вызывается под e.mu
func (e *Engine) cancelAppointmentLocked(ctx context.Context, current *domain.Appointment) error {
	updated := *current
	updated.Status = domain.StatusCancelled
	updated.UpdatedAt = e.now()

	putAppointment := func(batch *document.Batch) error {
		if err := batch.Put(domain.KindAppointment, updated.ID, updated); err != nil {
			return fmt.Errorf("%w: CancelAppointment - %v", ErrStorage, err)
		}
		return nil
	}

	if !current.SlotReleased {
		updated.SlotReleased = true

		released, err := e.cancelSlotLocked(ctx, current.SlotID, putAppointment)
		if err != nil {
			return err
		}
		if released {
			e.appointments[updated.ID] = &updated
			e.logger.Info("CancelAppointment: appointment id=%s cancelled, slot id=%s released", updated.ID, updated.SlotID)
			return nil
		}
		// Слот удален при перегенерации или уже пуст
		e.logger.Warn("CancelAppointment: slot id=%s of appointment id=%s had nothing to release", current.SlotID, current.ID)
	}

	batch := document.NewBatch()
	if err := putAppointment(batch); err != nil {
		return err
	}
	if err := e.commit(ctx, "CancelAppointment", batch); err != nil {
		return err
	}

	e.appointments[updated.ID] = &updated
	e.logger.Info("CancelAppointment: appointment id=%s cancelled", updated.ID)
	return nil
}

// UpdateAppointmentStatus меняет статус записи администратором.
// Отмена выполняется тем же путем, что и CancelAppointment.
func (e *Engine) UpdateAppointmentStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) error {
	if _, ok := domain.ParseAppointmentStatus(string(status)); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	current, ok := e.appointments[appointmentID]
	if !ok {
		e.logger.Warn("UpdateAppointmentStatus: appointment id=%s not found", appointmentID)
		return ErrAppointmentNotFound
	}
	if !current.CanTransitionTo(status) {
		e.logger.Warn("UpdateAppointmentStatus: appointment id=%s cannot move from %s to %s",
			appointmentID, current.Status, status)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	if status == domain.StatusCancelled {
		return e.cancelAppointmentLocked(ctx, current)
	}

	updated := *current
	updated.Status = status
	updated.UpdatedAt = e.now()

	batch := document.NewBatch()
	if err := batch.Put(domain.KindAppointment, updated.ID, updated); err != nil {
		return fmt.Errorf("%w: UpdateAppointmentStatus - %v", ErrStorage, err)
	}
	if err := e.commit(ctx, "UpdateAppointmentStatus", batch); err != nil {
		return err
	}

	e.appointments[updated.ID] = &updated
	e.logger.Info("UpdateAppointmentStatus: appointment id=%s %s -> %s", updated.ID, current.Status, status)
	return nil
}

// UpdatePaymentStatus меняет статус оплаты записи
func (e *Engine) UpdatePaymentStatus(ctx context.Context, appointmentID string, status domain.PaymentStatus) error {
	if _, ok := domain.ParsePaymentStatus(string(status)); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	current, ok := e.appointments[appointmentID]
	if !ok {
		return ErrAppointmentNotFound
	}

	updated := *current
	updated.PaymentStatus = status
	updated.UpdatedAt = e.now()

	batch := document.NewBatch()
	if err := batch.Put(domain.KindAppointment, updated.ID, updated); err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - %v", ErrStorage, err)
	}
	if err := e.commit(ctx, "UpdatePaymentStatus", batch); err != nil {
		return err
	}

	e.appointments[updated.ID] = &updated
	e.logger.Info("UpdatePaymentStatus: appointment id=%s payment=%s", updated.ID, status)
	return nil
}
