package create_booking

import "github.com/m04kA/SMC-SalonService/internal/domain"

// Request модель запроса на создание записи
type Request struct {
	UserID        string  // ID пользователя из заголовков сессии
	UserName      string  // Имя пользователя
	ServiceID     string  // ID услуги
	SlotID        string  // ID слота
	Notes         *string // Дополнительные заметки (опционально)
	PaymentMethod string  // card, cash или online; пусто = card
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment domain.Appointment
	Service     domain.Service

	// PaymentID пуст, если оплату не удалось зафиксировать
	PaymentID string
}
