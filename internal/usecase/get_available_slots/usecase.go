package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	engine       BookingEngine
	catalog      ServiceCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(engine BookingEngine, catalog ServiceCatalog, logger Logger) *UseCase {
	return &UseCase{
		engine:       engine,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider подменяет источник времени
func (uc *UseCase) SetTimeProvider(tp TimeProvider) {
	uc.timeProvider = tp
}

// Execute возвращает слоты даты со свободными местами.
// Слоты генерируются только для еще не нарезанной даты, существующую нарезку use case не меняет.
// Для сегодняшней даты уже начавшиеся слоты отбрасываются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s", req.ServiceID, req.Date)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now().UTC()
	date, err := validateRequest(req, now)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем услугу
	if _, err := uc.catalog.GetService(ctx, req.ServiceID); err != nil {
		uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Нарезаем дату, если слотов еще нет
	if err := uc.engine.EnsureSlots(ctx, req.Date); err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 4. Фильтруем по вместимости и текущему времени
	available := uc.engine.GetAvailableSlots(ctx, req.Date, req.ServiceID)
	slots := make([]Slot, 0, len(available))
	today := isSameDay(date, now)
	currentTime := types.NewTimeString(now)

	for _, slot := range available {
		if today && slot.StartTime.IsBefore(currentTime) {
			continue
		}
		slots = append(slots, toSlot(slot))
	}

	uc.logger.Info("GetAvailableSlots: %d available slots for service=%s, date=%s",
		len(slots), req.ServiceID, req.Date)

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}

func toSlot(slot domain.TimeSlot) Slot {
	return Slot{
		ID:             slot.ID,
		StartTime:      slot.StartTime,
		EndTime:        slot.EndTime,
		AvailableSpots: slot.AvailableSpots(),
		TotalSpots:     slot.MaxBookings,
	}
}
