package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/booking"
)

// Service сводный отчет администратора
type Service struct {
	engine  BookingEngine
	sales   SalesReader
	ratings RatingReader
	stock   StockReader
	logger  Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(engine BookingEngine, sales SalesReader, ratings RatingReader, stock StockReader, logger Logger) *Service {
	return &Service{
		engine:  engine,
		sales:   sales,
		ratings: ratings,
		stock:   stock,
		logger:  logger,
	}
}

// Daily нарезает слоты даты, если их еще нет, и собирает сводку за день
func (s *Service) Daily(ctx context.Context, date string) (*Report, error) {
	s.logger.Info("Daily: building dashboard for date=%s", date)

	if err := s.engine.EnsureSlots(ctx, date); err != nil {
		if errors.Is(err, booking.ErrInvalidDate) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDate, date)
		}
		s.logger.Error("Daily: failed to generate slots for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: Daily - generate slots: %v", ErrInternal, err)
	}

	series, err := s.sales.DailySeries(date, domain.SalesSeriesDays)
	if err != nil {
		return nil, fmt.Errorf("%w: Daily - sales series: %v", ErrInternal, err)
	}

	report := &Report{
		Date:          date,
		Appointments:  countByStatus(s.engine.AppointmentsByDate(date)),
		DailySales:    s.sales.DailySalesTotal(date),
		AverageRating: s.ratings.AverageRating(),
		LowStockItems: s.stock.LowStock(),
		Slots:         s.engine.SlotsByDate(date),
		SalesSeries:   series,
	}

	s.logger.Info("Daily: date=%s appointments=%d sales=%.2f lowStock=%d",
		date, report.Appointments.Total, report.DailySales, len(report.LowStockItems))
	return report, nil
}

func countByStatus(appointments []domain.Appointment) AppointmentStats {
	stats := AppointmentStats{Total: len(appointments)}
	for _, a := range appointments {
		switch a.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}
