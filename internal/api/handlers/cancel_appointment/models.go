package cancel_appointment

// CancelAppointmentResponse HTTP response model
type CancelAppointmentResponse struct {
	ID     string `json:"id"`
	SlotID string `json:"slotId"`
	Status string `json:"status"`
}
