package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// interval временной интервал слота
type interval struct {
	start types.TimeString
	end   types.TimeString
}

// generateIntervals нарезает рабочий день на интервалы фиксированной длины.
// Интервал, пересекающий время закрытия, отбрасывается, а не обрезается.
func generateIntervals(hours domain.BusinessHours, slotDuration int) ([]interval, error) {
	if !hours.IsOpen {
		return nil, nil
	}

	openTime, err := types.NewTimeStringFromString(hours.OpenTime.String())
	if err != nil {
		return nil, err
	}
	closeTime, err := types.NewTimeStringFromString(hours.CloseTime.String())
	if err != nil {
		return nil, err
	}

	intervals := make([]interval, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		end, err := current.AddMinutes(slotDuration)
		if err != nil {
			// Конец интервала за пределами суток, значит и за временем закрытия
			break
		}
		if end.IsAfter(closeTime) {
			break
		}

		intervals = append(intervals, interval{start: current, end: end})
		current = end
	}

	return intervals, nil
}

// GenerateSlots генерирует слоты на дату по расписанию дня недели.
// Существующие слоты с тем же ключом (date, startTime, endTime) сохраняют id и занятость,
// свободные слоты даты, не попавшие в новую нарезку, удаляются. Другие даты не затрагиваются.
// Если новая нарезка выбрасывает занятый слот, генерация отклоняется с ErrSlotsOccupied.
func (e *Engine) GenerateSlots(ctx context.Context, date string, slotDurationMinutes int) error {
	parsed, err := parseDate(date)
	if err != nil {
		e.logger.Warn("GenerateSlots: %v", err)
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.generateSlotsLocked(ctx, date, parsed, slotDurationMinutes)
}

// EnsureSlots генерирует слоты даты с длительностью по умолчанию, только если их еще нет.
// Уже нарезанную дату не меняет.
func (e *Engine) EnsureSlots(ctx context.Context, date string) error {
	parsed, err := parseDate(date)
	if err != nil {
		e.logger.Warn("EnsureSlots: %v", err)
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.slotsByDate[date]) > 0 {
		return nil
	}
	return e.generateSlotsLocked(ctx, date, parsed, 0)
}

// generateSlotsLocked вызывается под e.mu
func (e *Engine) generateSlotsLocked(ctx context.Context, date string, parsed time.Time, slotDurationMinutes int) error {
	if slotDurationMinutes <= 0 {
		slotDurationMinutes = e.defaultDuration
	}

	weekday := int(parsed.Weekday())
	hours, ok := e.hours[weekday]
	if !ok {
		hours = domain.BusinessHours{DayOfWeek: weekday, IsOpen: false}
	}

	intervals, err := generateIntervals(hours, slotDurationMinutes)
	if err != nil {
		e.logger.Error("GenerateSlots: invalid business hours for day=%d: %v", weekday, err)
		return fmt.Errorf("%w: GenerateSlots - day=%d: %v", ErrInvalidBusinessHours, weekday, err)
	}

	existing := make(map[domain.SlotKey]*domain.TimeSlot, len(e.slotsByDate[date]))
	for _, id := range e.slotsByDate[date] {
		slot := e.slots[id]
		existing[slot.Key()] = slot
	}

	batch := document.NewBatch()
	next := make([]*domain.TimeSlot, 0, len(intervals))
	kept := make(map[string]struct{}, len(intervals))

	for _, iv := range intervals {
		key := domain.SlotKey{Date: date, StartTime: iv.start, EndTime: iv.end}
		if old, found := existing[key]; found {
			slot := *old
			next = append(next, &slot)
			kept[slot.ID] = struct{}{}
			continue
		}

		slot := &domain.TimeSlot{
			ID:          e.newID(),
			Date:        date,
			StartTime:   iv.start,
			EndTime:     iv.end,
			MaxBookings: e.maxBookings,
		}
		slot.RecomputeBooked()
		if err := batch.Put(domain.KindSlot, slot.ID, slot); err != nil {
			return fmt.Errorf("%w: GenerateSlots - %v", ErrStorage, err)
		}
		next = append(next, slot)
	}

	removed := 0
	for _, id := range e.slotsByDate[date] {
		if _, ok := kept[id]; ok {
			continue
		}
		if slot := e.slots[id]; slot.CurrentBookings > 0 {
			e.logger.Warn("GenerateSlots: date=%s duration=%d would drop slot id=%s with %d bookings",
				date, slotDurationMinutes, id, slot.CurrentBookings)
			return fmt.Errorf("%w: GenerateSlots - slot %s %s-%s has %d bookings",
				ErrSlotsOccupied, id, slot.StartTime, slot.EndTime, slot.CurrentBookings)
		}
		batch.Delete(domain.KindSlot, id)
		removed++
	}

	if err := e.commit(ctx, "GenerateSlots", batch); err != nil {
		return err
	}

	for _, id := range e.slotsByDate[date] {
		delete(e.slots, id)
	}
	ids := make([]string, 0, len(next))
	for _, slot := range next {
		e.slots[slot.ID] = slot
		ids = append(ids, slot.ID)
	}
	if len(ids) == 0 {
		delete(e.slotsByDate, date)
	} else {
		e.slotsByDate[date] = ids
	}

	e.metrics.ObserveSlotGeneration()
	e.logger.Info("GenerateSlots: date=%s day=%d duration=%d slots=%d removed=%d",
		date, weekday, slotDurationMinutes, len(ids), removed)
	return nil
}

// GetAvailableSlots возвращает слоты даты со свободными местами в порядке начала.
// Для неизвестной услуги возвращается пустой список.
// Длительность услуги с длиной слота не сверяется.
func (e *Engine) GetAvailableSlots(ctx context.Context, date string, serviceID string) []domain.TimeSlot {
	if _, err := e.catalog.GetService(ctx, serviceID); err != nil {
		e.logger.Warn("GetAvailableSlots: service id=%s not resolved: %v", serviceID, err)
		return []domain.TimeSlot{}
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make([]domain.TimeSlot, 0, len(e.slotsByDate[date]))
	for _, id := range e.slotsByDate[date] {
		slot := e.slots[id]
		if slot.HasCapacity() {
			result = append(result, *slot)
		}
	}

	return result
}

// BookSlot занимает одно место в слоте.
// Возвращает false, если слот не найден или заполнен; ошибка только при сбое хранилища.
func (e *Engine) BookSlot(ctx context.Context, slotID string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	booked, err := e.bookSlotLocked(ctx, slotID, nil)
	if err != nil {
		return false, err
	}
	return booked, nil
}

// bookSlotLocked занимает место и сохраняет слот вместе с extra-изменениями одним пакетом.
// Вызывается под e.mu.
func (e *Engine) bookSlotLocked(ctx context.Context, slotID string, extra func(batch *document.Batch, slot *domain.TimeSlot) error) (bool, error) {
	current, ok := e.slots[slotID]
	if !ok {
		e.metrics.ObserveBooking(metrics.OutcomeNotFound)
		e.logger.Warn("BookSlot: slot id=%s not found", slotID)
		return false, nil
	}
	if !current.HasCapacity() {
		e.metrics.ObserveBooking(metrics.OutcomeFull)
		e.logger.Info("BookSlot: slot id=%s is full (%d/%d)", slotID, current.CurrentBookings, current.MaxBookings)
		return false, nil
	}

	slot := *current
	slot.CurrentBookings++
	slot.RecomputeBooked()

	batch := document.NewBatch()
	if err := batch.Put(domain.KindSlot, slot.ID, slot); err != nil {
		return false, fmt.Errorf("%w: BookSlot - %v", ErrStorage, err)
	}
	if extra != nil {
		if err := extra(batch, &slot); err != nil {
			return false, err
		}
	}

	if err := e.commit(ctx, "BookSlot", batch); err != nil {
		e.metrics.ObserveBooking(metrics.OutcomeError)
		return false, err
	}

	e.slots[slot.ID] = &slot
	e.metrics.ObserveBooking(metrics.OutcomeBooked)
	e.logger.Info("BookSlot: slot id=%s booked (%d/%d)", slot.ID, slot.CurrentBookings, slot.MaxBookings)
	return true, nil
}

// CancelSlot освобождает одно место в слоте.
// Возвращает false, если слот не найден или в нем нет бронирований.
func (e *Engine) CancelSlot(ctx context.Context, slotID string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cancelSlotLocked(ctx, slotID, nil)
}

// cancelSlotLocked вызывается под e.mu
func (e *Engine) cancelSlotLocked(ctx context.Context, slotID string, extra func(batch *document.Batch) error) (bool, error) {
	current, ok := e.slots[slotID]
	if !ok || current.CurrentBookings <= 0 {
		e.logger.Warn("CancelSlot: slot id=%s not found or empty", slotID)
		return false, nil
	}

	slot := *current
	slot.CurrentBookings--
	slot.RecomputeBooked()

	batch := document.NewBatch()
	if err := batch.Put(domain.KindSlot, slot.ID, slot); err != nil {
		return false, fmt.Errorf("%w: CancelSlot - %v", ErrStorage, err)
	}
	if extra != nil {
		if err := extra(batch); err != nil {
			return false, err
		}
	}

	if err := e.commit(ctx, "CancelSlot", batch); err != nil {
		return false, err
	}

	e.slots[slot.ID] = &slot
	e.metrics.ObserveBooking(metrics.OutcomeCancelled)
	e.logger.Info("CancelSlot: slot id=%s released (%d/%d)", slot.ID, slot.CurrentBookings, slot.MaxBookings)
	return true, nil
}
