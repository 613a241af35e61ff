package domain

// Feedback отзыв клиента о визите
type Feedback struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	UserName      string `json:"userName"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
	Date          string `json:"date"`
}
