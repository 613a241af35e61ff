package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Исходы операций бронирования
const (
	OutcomeBooked    = "booked"
	OutcomeFull      = "full"
	OutcomeNotFound  = "not_found"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingsTotal       *prometheus.CounterVec
	SlotsGenerated      prometheus.Counter
}

// New создает и регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		BookingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "salon_bookings_total",
				Help:        "Slot booking attempts by outcome",
				ConstLabels: constLabels,
			},
			[]string{"outcome"},
		),
		SlotsGenerated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "salon_slot_generations_total",
				Help:        "Number of slot generation runs",
				ConstLabels: constLabels,
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsTotal,
		m.SlotsGenerated,
	)

	return m
}

// ObserveBooking увеличивает счетчик бронирований с указанным исходом
// Безопасен для nil (метрики выключены)
func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(outcome).Inc()
}

// ObserveSlotGeneration увеличивает счетчик генераций слотов
func (m *Metrics) ObserveSlotGeneration() {
	if m == nil {
		return
	}
	m.SlotsGenerated.Inc()
}
