package payments

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
)

// Service учет платежей. Платежи только фиксируются, списание не выполняется.
type Service struct {
	mu           sync.RWMutex
	store        DocumentStore
	timeProvider TimeProvider
	logger       Logger
	payments     map[string]*domain.Payment
}

// NewService создает новый экземпляр сервиса платежей
func NewService(store DocumentStore, logger Logger) *Service {
	return &Service{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		payments:     make(map[string]*domain.Payment),
	}
}

// SetTimeProvider подменяет источник времени
func (s *Service) SetTimeProvider(tp TimeProvider) {
	s.timeProvider = tp
}

// Restore загружает платежи из хранилища
func (s *Service) Restore(ctx context.Context) error {
	docs, err := s.store.Load(ctx, domain.KindPayment)
	if err != nil {
		return fmt.Errorf("%w: Restore - load payments: %v", ErrInternal, err)
	}
	payments, err := document.Decode[domain.Payment](docs)
	if err != nil {
		return fmt.Errorf("%w: Restore - decode payments: %v", ErrInternal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range payments {
		payment := payments[i]
		s.payments[payment.ID] = &payment
	}

	s.logger.Info("Restore: loaded %d payments", len(payments))
	return nil
}

// RecordBookingPayment фиксирует оплату завершенного бронирования со статусом paid.
// Пустая дата события заменяется текущей.
func (s *Service) RecordBookingPayment(ctx context.Context, event domain.BookingEvent) (string, error) {
	if event.AppointmentID == "" || event.UserID == "" {
		return "", fmt.Errorf("%w: appointmentId and userId are required", ErrInvalidInput)
	}
	if event.Amount < 0 {
		return "", fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	method, ok := domain.ParsePaymentMethod(string(event.Method))
	if !ok {
		return "", fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, event.Method)
	}

	date := event.Date
	if date == "" {
		date = s.timeProvider.Now().UTC().Format(domain.DateFormat)
	}

	payment := &domain.Payment{
		ID:            uuid.NewString(),
		AppointmentID: event.AppointmentID,
		UserID:        event.UserID,
		UserName:      event.UserName,
		Amount:        event.Amount,
		Date:          date,
		PaymentMethod: method,
		Service:       event.Service,
		Status:        domain.PaymentPaid,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(ctx, "RecordBookingPayment", payment); err != nil {
		return "", err
	}

	s.payments[payment.ID] = payment
	s.logger.Info("RecordBookingPayment: payment id=%s appointment=%s amount=%.2f method=%s",
		payment.ID, payment.AppointmentID, payment.Amount, payment.PaymentMethod)
	return payment.ID, nil
}

// UpdateStatus меняет статус платежа
func (s *Service) UpdateStatus(ctx context.Context, paymentID string, status domain.PaymentStatus) error {
	if _, ok := domain.ParsePaymentStatus(string(status)); !ok {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.payments[paymentID]
	if !ok {
		return ErrPaymentNotFound
	}

	updated := *current
	updated.Status = status
	if err := s.save(ctx, "UpdateStatus", &updated); err != nil {
		return err
	}

	s.payments[paymentID] = &updated
	s.logger.Info("UpdateStatus: payment id=%s status=%s", paymentID, status)
	return nil
}

// ByUser возвращает платежи пользователя
func (s *Service) ByUser(userID string) []domain.Payment {
	return s.filter(func(p *domain.Payment) bool { return p.UserID == userID })
}

// ByDate возвращает платежи за дату
func (s *Service) ByDate(date string) []domain.Payment {
	return s.filter(func(p *domain.Payment) bool { return p.Date == date })
}

// ByDateRange возвращает платежи за период, границы включены
func (s *Service) ByDateRange(from, to string) []domain.Payment {
	return s.filter(func(p *domain.Payment) bool { return p.Date >= from && p.Date <= to })
}

// ByAppointment возвращает платежи записи
func (s *Service) ByAppointment(appointmentID string) []domain.Payment {
	return s.filter(func(p *domain.Payment) bool { return p.AppointmentID == appointmentID })
}

// DailySalesTotal сумма оплаченных платежей за дату
func (s *Service) DailySalesTotal(date string) float64 {
	return s.paidTotal(func(p *domain.Payment) bool { return p.Date == date })
}

// MonthlySalesTotal сумма оплаченных платежей за месяц (1-12)
func (s *Service) MonthlySalesTotal(year, month int) float64 {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	return s.paidTotal(func(p *domain.Payment) bool { return strings.HasPrefix(p.Date, prefix) })
}

// YearlySalesTotal сумма оплаченных платежей за год
func (s *Service) YearlySalesTotal(year int) float64 {
	prefix := fmt.Sprintf("%04d-", year)
	return s.paidTotal(func(p *domain.Payment) bool { return strings.HasPrefix(p.Date, prefix) })
}

// DailySeries суммы продаж за days дней, заканчивая датой end включительно
func (s *Service) DailySeries(end string, days int) ([]DailyTotal, error) {
	endDate, err := time.Parse(domain.DateFormat, end)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, end)
	}

	series := make([]DailyTotal, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := endDate.AddDate(0, 0, -i).Format(domain.DateFormat)
		series = append(series, DailyTotal{Date: date, Total: s.DailySalesTotal(date)})
	}
	return series, nil
}

// DailyTotal сумма продаж за день
type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

func (s *Service) paidTotal(match func(p *domain.Payment) bool) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, p := range s.payments {
		if p.Status == domain.PaymentPaid && match(p) {
			total += p.Amount
		}
	}
	return total
}

func (s *Service) filter(match func(p *domain.Payment) bool) []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Payment, 0)
	for _, p := range s.payments {
		if match(p) {
			result = append(result, *p)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// save вызывается под s.mu
func (s *Service) save(ctx context.Context, op string, payment *domain.Payment) error {
	batch := document.NewBatch()
	if err := batch.Put(domain.KindPayment, payment.ID, payment); err != nil {
		return fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
	}
	if err := s.store.Apply(ctx, batch); err != nil {
		s.logger.Error("%s: failed to persist payment id=%s: %v", op, payment.ID, err)
		return fmt.Errorf("%w: %s - apply batch: %v", ErrInternal, op, err)
	}
	return nil
}
