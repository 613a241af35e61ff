package dashboard

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/payments"
)

// AppointmentStats количество записей по статусам
type AppointmentStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// Report сводка для администратора за день
type Report struct {
	Date          string                 `json:"date"`
	Appointments  AppointmentStats       `json:"appointments"`
	DailySales    float64                `json:"dailySales"`
	AverageRating float64                `json:"averageRating"`
	LowStockItems []domain.InventoryItem `json:"lowStockItems"`
	Slots         []domain.TimeSlot      `json:"slots"`
	SalesSeries   []payments.DailyTotal  `json:"salesSeries"`
}
