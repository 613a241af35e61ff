package list_appointments

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Filter параметры фильтрации списка записей
type Filter struct {
	Date   string
	Status *domain.AppointmentStatus
}

// ParseFilter разбирает query параметры date и status
func ParseFilter(date, status string) (*Filter, error) {
	filter := &Filter{Date: date}

	if date != "" {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", date, err)
		}
	}

	if status != "" {
		parsed, ok := domain.ParseAppointmentStatus(status)
		if !ok {
			return nil, fmt.Errorf("invalid status %q", status)
		}
		filter.Status = &parsed
	}

	return filter, nil
}

// Apply оставляет записи, подходящие под фильтр по статусу
func (f *Filter) Apply(appointments []domain.Appointment) []domain.Appointment {
	if f.Status == nil {
		return appointments
	}

	result := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Status == *f.Status {
			result = append(result, a)
		}
	}
	return result
}
