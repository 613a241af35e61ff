package domain

import "github.com/m04kA/SMC-SalonService/pkg/types"

// TimeSlot временной слот, доступный для бронирования
type TimeSlot struct {
	ID              string           `json:"id"`
	Date            string           `json:"date"` // YYYY-MM-DD
	StartTime       types.TimeString `json:"startTime"`
	EndTime         types.TimeString `json:"endTime"`
	MaxBookings     int              `json:"maxBookings"`
	CurrentBookings int              `json:"currentBookings"`
	IsBooked        bool             `json:"isBooked"`
}

// SlotKey ключ слота для слияния при повторной генерации
type SlotKey struct {
	Date      string
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Key возвращает ключ (date, startTime, endTime)
func (s *TimeSlot) Key() SlotKey {
	return SlotKey{Date: s.Date, StartTime: s.StartTime, EndTime: s.EndTime}
}

// HasCapacity returns true if the slot can take one more booking
func (s *TimeSlot) HasCapacity() bool {
	return s.CurrentBookings < s.MaxBookings
}

// AvailableSpots returns the number of free places in the slot
func (s *TimeSlot) AvailableSpots() int {
	if s.CurrentBookings >= s.MaxBookings {
		return 0
	}
	return s.MaxBookings - s.CurrentBookings
}

// RecomputeBooked пересчитывает производный флаг isBooked
func (s *TimeSlot) RecomputeBooked() {
	s.IsBooked = s.CurrentBookings >= s.MaxBookings
}
