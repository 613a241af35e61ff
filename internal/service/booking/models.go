package booking

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Config параметры движка бронирования
type Config struct {
	DefaultSlotDurationMinutes int
	MaxBookingsPerSlot         int
	BusinessHours              []domain.BusinessHours
}

// NewAppointment данные для создания записи
type NewAppointment struct {
	UserID    string
	UserName  string
	ServiceID string
	SlotID    string
	Notes     *string
}

// BusinessHoursPatch частичное обновление расписания дня.
// Nil поля не меняются.
type BusinessHoursPatch struct {
	OpenTime  *types.TimeString
	CloseTime *types.TimeString
	IsOpen    *bool
}
