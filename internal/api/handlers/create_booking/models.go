package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     string  `json:"serviceId"`
	SlotID        string  `json:"slotId"`
	UserName      string  `json:"userName,omitempty"` // если не передан X-User-Name
	Notes         *string `json:"notes,omitempty"`
	PaymentMethod string  `json:"paymentMethod,omitempty"` // card | cash | online
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	UserName      string  `json:"userName"`
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	ServicePrice  float64 `json:"servicePrice"`
	Duration      int     `json:"duration"`
	SlotID        string  `json:"slotId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentID     string  `json:"paymentId,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(user middleware.User) *createBooking.Request {
	userName := user.Name
	if userName == "" {
		userName = r.UserName
	}

	return &createBooking.Request{
		UserID:        user.ID,
		UserName:      userName,
		ServiceID:     r.ServiceID,
		SlotID:        r.SlotID,
		Notes:         r.Notes,
		PaymentMethod: r.PaymentMethod,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	a := resp.Appointment
	return &AppointmentResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		UserName:      a.UserName,
		ServiceID:     a.ServiceID,
		ServiceName:   a.ServiceName,
		ServicePrice:  resp.Service.Price,
		Duration:      resp.Service.Duration,
		SlotID:        a.SlotID,
		Date:          a.Date,
		StartTime:     a.StartTime.String(),
		EndTime:       a.EndTime.String(),
		Status:        string(a.Status),
		PaymentStatus: string(a.PaymentStatus),
		PaymentID:     resp.PaymentID,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}
