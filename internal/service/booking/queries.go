package booking

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentsByUser возвращает записи пользователя
func (e *Engine) AppointmentsByUser(userID string) []domain.Appointment {
	return e.filterAppointments(func(a *domain.Appointment) bool { return a.UserID == userID })
}

// AppointmentsByDate возвращает записи на дату
func (e *Engine) AppointmentsByDate(date string) []domain.Appointment {
	return e.filterAppointments(func(a *domain.Appointment) bool { return a.Date == date })
}

// AppointmentsBySlot возвращает записи слота
func (e *Engine) AppointmentsBySlot(slotID string) []domain.Appointment {
	return e.filterAppointments(func(a *domain.Appointment) bool { return a.SlotID == slotID })
}

// Appointments возвращает все записи
func (e *Engine) Appointments() []domain.Appointment {
	return e.filterAppointments(func(*domain.Appointment) bool { return true })
}

// Appointment возвращает запись по id
func (e *Engine) Appointment(appointmentID string) (domain.Appointment, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	appointment, ok := e.appointments[appointmentID]
	if !ok {
		return domain.Appointment{}, false
	}
	return *appointment, true
}

// AppointmentDetails возвращает запись вместе с услугой из каталога.
// Услуга nil, если она удалена из каталога.
func (e *Engine) AppointmentDetails(ctx context.Context, appointmentID string) (*domain.Appointment, *domain.Service, error) {
	appointment, ok := e.Appointment(appointmentID)
	if !ok {
		return nil, nil, ErrAppointmentNotFound
	}

	service, err := e.catalog.GetService(ctx, appointment.ServiceID)
	if err != nil {
		e.logger.Warn("AppointmentDetails: service id=%s of appointment id=%s not resolved: %v",
			appointment.ServiceID, appointmentID, err)
		return &appointment, nil, nil
	}

	return &appointment, service, nil
}

// SlotsByDate возвращает все слоты даты в порядке начала
func (e *Engine) SlotsByDate(date string) []domain.TimeSlot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make([]domain.TimeSlot, 0, len(e.slotsByDate[date]))
	for _, id := range e.slotsByDate[date] {
		result = append(result, *e.slots[id])
	}
	return result
}

// Slot возвращает слот по id
func (e *Engine) Slot(slotID string) (domain.TimeSlot, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	slot, ok := e.slots[slotID]
	if !ok {
		return domain.TimeSlot{}, false
	}
	return *slot, true
}

// filterAppointments возвращает копии записей, упорядоченные по дате и времени начала
func (e *Engine) filterAppointments(match func(a *domain.Appointment) bool) []domain.Appointment {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make([]domain.Appointment, 0)
	for _, a := range e.appointments {
		if match(a) {
			result = append(result, *a)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		if result[i].StartTime != result[j].StartTime {
			return result[i].StartTime.IsBefore(result[j].StartTime)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result
}
