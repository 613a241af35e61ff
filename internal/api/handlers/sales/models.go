package sales

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Периоды отчета о продажах
const (
	PeriodDay   = "day"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// SalesResponse сумма продаж за период
type SalesResponse struct {
	Period string  `json:"period"`
	Date   string  `json:"date,omitempty"`
	Year   int     `json:"year,omitempty"`
	Month  int     `json:"month,omitempty"`
	Total  float64 `json:"total"`
}

// UpdatePaymentStatusRequest HTTP request model
type UpdatePaymentStatusRequest struct {
	Status string `json:"status"`
}

// SalesQuery разобранные параметры запроса продаж
type SalesQuery struct {
	Period string
	Date   string
	Year   int
	Month  int
}

// ParseSalesQuery разбирает ?date= | ?year=&month= | ?year=
func ParseSalesQuery(date, year, month string) (*SalesQuery, error) {
	if date != "" {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			return nil, fmt.Errorf("invalid date %q", date)
		}
		return &SalesQuery{Period: PeriodDay, Date: date}, nil
	}

	if year == "" {
		return nil, errors.New("date or year is required")
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < 1 {
		return nil, fmt.Errorf("invalid year %q", year)
	}

	if month == "" {
		return &SalesQuery{Period: PeriodYear, Year: y}, nil
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return nil, fmt.Errorf("invalid month %q", month)
	}

	return &SalesQuery{Period: PeriodMonth, Year: y, Month: m}, nil
}
