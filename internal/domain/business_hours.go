package domain

import (
	"strconv"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// BusinessHours расписание работы салона на день недели
type BusinessHours struct {
	DayOfWeek int              `json:"dayOfWeek"` // 0-6, 0 = воскресенье
	OpenTime  types.TimeString `json:"openTime"`
	CloseTime types.TimeString `json:"closeTime"`
	IsOpen    bool             `json:"isOpen"`
}

// Key возвращает идентификатор документа расписания
func (h BusinessHours) Key() string {
	return strconv.Itoa(h.DayOfWeek)
}

// IsValid проверяет инварианты расписания:
// день недели в диапазоне 0-6, для рабочего дня openTime < closeTime
func (h BusinessHours) IsValid() bool {
	if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
		return false
	}
	if !h.IsOpen {
		return true
	}
	if h.OpenTime.Validate() != nil || h.CloseTime.Validate() != nil {
		return false
	}
	return h.OpenTime.IsBefore(h.CloseTime)
}

// DefaultBusinessHours расписание по умолчанию
func DefaultBusinessHours() []BusinessHours {
	return []BusinessHours{
		{DayOfWeek: 0, OpenTime: "00:00", CloseTime: "00:00", IsOpen: false},
		{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00", IsOpen: true},
		{DayOfWeek: 2, OpenTime: "09:00", CloseTime: "18:00", IsOpen: true},
		{DayOfWeek: 3, OpenTime: "09:00", CloseTime: "18:00", IsOpen: true},
		{DayOfWeek: 4, OpenTime: "09:00", CloseTime: "20:00", IsOpen: true},
		{DayOfWeek: 5, OpenTime: "09:00", CloseTime: "20:00", IsOpen: true},
		{DayOfWeek: 6, OpenTime: "10:00", CloseTime: "16:00", IsOpen: true},
	}
}
