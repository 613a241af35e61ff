package generate_slots

import "github.com/m04kA/SMC-SalonService/internal/domain"

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	Date                string `json:"date"`                          // YYYY-MM-DD
	SlotDurationMinutes int    `json:"slotDurationMinutes,omitempty"` // 0 = длительность по умолчанию
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	Date  string            `json:"date"`
	Slots []domain.TimeSlot `json:"slots"`
}
