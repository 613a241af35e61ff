package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
)

// Engine владеет расписанием, слотами и записями.
// Все изменения выполняются под одной блокировкой и сохраняются одним пакетом
// до замены состояния в памяти, поэтому неудачная запись не оставляет следов.
type Engine struct {
	mu sync.RWMutex

	catalog      ServiceCatalog
	store        DocumentStore
	metrics      MetricsRecorder
	timeProvider TimeProvider
	newID        func() string
	logger       Logger

	defaultDuration int
	maxBookings     int

	hours        map[int]domain.BusinessHours
	slots        map[string]*domain.TimeSlot
	slotsByDate  map[string][]string
	appointments map[string]*domain.Appointment
}

// NewEngine создает движок бронирования
func NewEngine(
	cfg Config,
	catalog ServiceCatalog,
	store DocumentStore,
	metrics MetricsRecorder,
	logger Logger,
) *Engine {
	if cfg.DefaultSlotDurationMinutes <= 0 {
		cfg.DefaultSlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if cfg.MaxBookingsPerSlot <= 0 {
		cfg.MaxBookingsPerSlot = domain.DefaultMaxBookingsPerSlot
	}
	if len(cfg.BusinessHours) == 0 {
		cfg.BusinessHours = domain.DefaultBusinessHours()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	e := &Engine{
		catalog:         catalog,
		store:           store,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		newID:           uuid.NewString,
		logger:          logger,
		defaultDuration: cfg.DefaultSlotDurationMinutes,
		maxBookings:     cfg.MaxBookingsPerSlot,
		hours:           make(map[int]domain.BusinessHours),
		slots:           make(map[string]*domain.TimeSlot),
		slotsByDate:     make(map[string][]string),
		appointments:    make(map[string]*domain.Appointment),
	}

	for _, h := range cfg.BusinessHours {
		e.hours[h.DayOfWeek] = h
	}

	return e
}

// SetTimeProvider подменяет источник времени
func (e *Engine) SetTimeProvider(tp TimeProvider) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.timeProvider = tp
}

// SetIDGenerator подменяет генератор идентификаторов
func (e *Engine) SetIDGenerator(fn func() string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.newID = fn
}

// Restore загружает расписание, слоты и записи из хранилища.
// Сохраненное расписание перекрывает расписание из конфигурации.
func (e *Engine) Restore(ctx context.Context) error {
	e.logger.Info("Restore: loading engine state")

	hoursDocs, err := e.store.Load(ctx, domain.KindBusinessHours)
	if err != nil {
		return fmt.Errorf("%w: Restore - load business hours: %v", ErrStorage, err)
	}
	hours, err := document.Decode[domain.BusinessHours](hoursDocs)
	if err != nil {
		return fmt.Errorf("%w: Restore - decode business hours: %v", ErrStorage, err)
	}

	slotDocs, err := e.store.Load(ctx, domain.KindSlot)
	if err != nil {
		return fmt.Errorf("%w: Restore - load slots: %v", ErrStorage, err)
	}
	slots, err := document.Decode[domain.TimeSlot](slotDocs)
	if err != nil {
		return fmt.Errorf("%w: Restore - decode slots: %v", ErrStorage, err)
	}

	appointmentDocs, err := e.store.Load(ctx, domain.KindAppointment)
	if err != nil {
		return fmt.Errorf("%w: Restore - load appointments: %v", ErrStorage, err)
	}
	appointments, err := document.Decode[domain.Appointment](appointmentDocs)
	if err != nil {
		return fmt.Errorf("%w: Restore - decode appointments: %v", ErrStorage, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, h := range hours {
		if !h.IsValid() {
			e.logger.Warn("Restore: skipping invalid business hours for day=%d", h.DayOfWeek)
			continue
		}
		e.hours[h.DayOfWeek] = h
	}

	for i := range slots {
		slot := slots[i]
		slot.RecomputeBooked()
		e.slots[slot.ID] = &slot
		e.slotsByDate[slot.Date] = append(e.slotsByDate[slot.Date], slot.ID)
	}
	for date := range e.slotsByDate {
		e.sortDateSlots(date)
	}

	for i := range appointments {
		appointment := appointments[i]
		e.appointments[appointment.ID] = &appointment
	}

	e.logger.Info("Restore: loaded %d business hours, %d slots, %d appointments",
		len(hours), len(slots), len(appointments))
	return nil
}

// commit сохраняет пакет изменений. Вызывается под e.mu.
func (e *Engine) commit(ctx context.Context, op string, batch *document.Batch) error {
	if err := e.store.Apply(ctx, batch); err != nil {
		e.logger.Error("%s: failed to persist changes: %v", op, err)
		return fmt.Errorf("%w: %s - apply batch: %v", ErrStorage, op, err)
	}
	return nil
}

// sortDateSlots упорядочивает слоты даты по времени начала. Вызывается под e.mu.
func (e *Engine) sortDateSlots(date string) {
	ids := e.slotsByDate[date]
	sort.SliceStable(ids, func(i, j int) bool {
		return e.slots[ids[i]].StartTime.IsBefore(e.slots[ids[j]].StartTime)
	})
}

func (e *Engine) now() time.Time {
	return e.timeProvider.Now().UTC()
}

type noopMetrics struct{}

func (noopMetrics) ObserveBooking(string)  {}
func (noopMetrics) ObserveSlotGeneration() {}

func parseDate(date string) (time.Time, error) {
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, date, err)
	}
	return parsed, nil
}
