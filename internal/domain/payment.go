package domain

// PaymentMethod способ оплаты
type PaymentMethod string

const (
	MethodCard   PaymentMethod = "card"
	MethodCash   PaymentMethod = "cash"
	MethodOnline PaymentMethod = "online"
)

// Payment запись об оплате
type Payment struct {
	ID            string        `json:"id"`
	AppointmentID string        `json:"appointmentId"`
	UserID        string        `json:"userId"`
	UserName      string        `json:"userName"`
	Amount        float64       `json:"amount"`
	Date          string        `json:"date"` // YYYY-MM-DD
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Service       string        `json:"service"`
	Status        PaymentStatus `json:"status"`
}

// BookingEvent событие о завершенном бронировании, по которому фиксируется оплата
type BookingEvent struct {
	AppointmentID string
	UserID        string
	UserName      string
	Amount        float64
	Service       string
	Date          string
	Method        PaymentMethod
}

// ParsePaymentMethod конвертирует строку в PaymentMethod; пустая строка = card
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	if s == "" {
		return MethodCard, true
	}
	method := PaymentMethod(s)
	switch method {
	case MethodCard, MethodCash, MethodOnline:
		return method, true
	default:
		return "", false
	}
}
