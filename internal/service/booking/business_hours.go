package booking

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
)

// BusinessHours возвращает расписание, упорядоченное по дню недели
func (e *Engine) BusinessHours() []domain.BusinessHours {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make([]domain.BusinessHours, 0, len(e.hours))
	for _, h := range e.hours {
		result = append(result, h)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DayOfWeek < result[j].DayOfWeek })

	return result
}

// SetBusinessHours заменяет расписание указанных дней.
// Если хотя бы один день невалиден, ничего не меняется.
func (e *Engine) SetBusinessHours(ctx context.Context, hours []domain.BusinessHours) error {
	batch := document.NewBatch()
	for _, h := range hours {
		if !h.IsValid() {
			e.logger.Warn("SetBusinessHours: invalid hours for day=%d", h.DayOfWeek)
			return fmt.Errorf("%w: day=%d open=%s close=%s", ErrInvalidBusinessHours, h.DayOfWeek, h.OpenTime, h.CloseTime)
		}
		if err := batch.Put(domain.KindBusinessHours, h.Key(), h); err != nil {
			return fmt.Errorf("%w: SetBusinessHours - %v", ErrStorage, err)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.commit(ctx, "SetBusinessHours", batch); err != nil {
		return err
	}

	for _, h := range hours {
		e.hours[h.DayOfWeek] = h
	}

	e.logger.Info("SetBusinessHours: updated %d days", len(hours))
	return nil
}

// UpdateBusinessHour частично обновляет расписание одного дня
func (e *Engine) UpdateBusinessHour(ctx context.Context, dayOfWeek int, patch BusinessHoursPatch) (*domain.BusinessHours, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, fmt.Errorf("%w: day=%d", ErrInvalidBusinessHours, dayOfWeek)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	updated, ok := e.hours[dayOfWeek]
	if !ok {
		updated = domain.BusinessHours{DayOfWeek: dayOfWeek}
	}
	if patch.OpenTime != nil {
		updated.OpenTime = *patch.OpenTime
	}
	if patch.CloseTime != nil {
		updated.CloseTime = *patch.CloseTime
	}
	if patch.IsOpen != nil {
		updated.IsOpen = *patch.IsOpen
	}

	if !updated.IsValid() {
		e.logger.Warn("UpdateBusinessHour: invalid hours for day=%d open=%s close=%s",
			dayOfWeek, updated.OpenTime, updated.CloseTime)
		return nil, fmt.Errorf("%w: day=%d open=%s close=%s", ErrInvalidBusinessHours, dayOfWeek, updated.OpenTime, updated.CloseTime)
	}

	batch := document.NewBatch()
	if err := batch.Put(domain.KindBusinessHours, updated.Key(), updated); err != nil {
		return nil, fmt.Errorf("%w: UpdateBusinessHour - %v", ErrStorage, err)
	}
	if err := e.commit(ctx, "UpdateBusinessHour", batch); err != nil {
		return nil, err
	}

	e.hours[dayOfWeek] = updated
	e.logger.Info("UpdateBusinessHour: day=%d open=%v %s-%s", dayOfWeek, updated.IsOpen, updated.OpenTime, updated.CloseTime)
	return &updated, nil
}
