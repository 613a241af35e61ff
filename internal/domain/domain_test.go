package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessHoursIsValid(t *testing.T) {
	assert.True(t, BusinessHours{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00", IsOpen: true}.IsValid())
	assert.True(t, BusinessHours{DayOfWeek: 0, OpenTime: "00:00", CloseTime: "00:00", IsOpen: false}.IsValid())
	assert.False(t, BusinessHours{DayOfWeek: 1, OpenTime: "18:00", CloseTime: "09:00", IsOpen: true}.IsValid())
	assert.False(t, BusinessHours{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "09:00", IsOpen: true}.IsValid())
	assert.False(t, BusinessHours{DayOfWeek: 7, IsOpen: false}.IsValid())
}

func TestDefaultBusinessHoursAreValid(t *testing.T) {
	hours := DefaultBusinessHours()
	assert.Len(t, hours, 7)
	for i, h := range hours {
		assert.Equal(t, i, h.DayOfWeek)
		assert.True(t, h.IsValid())
	}
	assert.False(t, hours[0].IsOpen)
}

func TestSlotRecomputeBooked(t *testing.T) {
	slot := TimeSlot{MaxBookings: 2, CurrentBookings: 1}
	slot.RecomputeBooked()
	assert.False(t, slot.IsBooked)
	assert.True(t, slot.HasCapacity())
	assert.Equal(t, 1, slot.AvailableSpots())

	slot.CurrentBookings = 2
	slot.RecomputeBooked()
	assert.True(t, slot.IsBooked)
	assert.False(t, slot.HasCapacity())
	assert.Equal(t, 0, slot.AvailableSpots())
}

func TestAppointmentTransitions(t *testing.T) {
	a := Appointment{Status: StatusPending}
	assert.True(t, a.CanTransitionTo(StatusConfirmed))
	assert.True(t, a.CanTransitionTo(StatusCompleted))
	assert.True(t, a.CanTransitionTo(StatusCancelled))
	assert.False(t, a.CanTransitionTo(StatusPending))

	a.Status = StatusConfirmed
	assert.False(t, a.CanTransitionTo(StatusConfirmed))
	assert.True(t, a.CanTransitionTo(StatusCompleted))

	for _, terminal := range []AppointmentStatus{StatusCancelled, StatusCompleted} {
		a.Status = terminal
		assert.True(t, a.IsTerminal())
		assert.False(t, a.CanBeCancelled())
		assert.False(t, a.CanTransitionTo(StatusConfirmed))
		assert.False(t, a.CanTransitionTo(StatusCancelled))
	}
}

func TestInventoryLowStock(t *testing.T) {
	item := InventoryItem{CurrentQuantity: 20, IdealQuantity: 50, LowStockAlert: 20}
	assert.True(t, item.IsLowStock())
	assert.Equal(t, 30, item.ShortfallQuantity())

	item.CurrentQuantity = 60
	assert.False(t, item.IsLowStock())
	assert.Equal(t, 0, item.ShortfallQuantity())
}

func TestParsers(t *testing.T) {
	_, ok := ParseAppointmentStatus("confirmed")
	assert.True(t, ok)
	_, ok = ParseAppointmentStatus("scheduled")
	assert.False(t, ok)

	method, ok := ParsePaymentMethod("")
	assert.True(t, ok)
	assert.Equal(t, MethodCard, method)
	_, ok = ParsePaymentMethod("crypto")
	assert.False(t, ok)
}
