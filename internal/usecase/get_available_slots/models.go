package get_available_slots

import (
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date      string // Дата YYYY-MM-DD
	ServiceID string // ID услуги
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      string // Дата, на которую запрашивались слоты
	ServiceID string // ID услуги
	Slots     []Slot // Список доступных слотов
}

// Slot модель временного слота
type Slot struct {
	ID             string           // ID слота для бронирования
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	EndTime        types.TimeString // Время окончания слота
	AvailableSpots int              // Количество свободных мест
	TotalSpots     int              // Общее количество мест
}
