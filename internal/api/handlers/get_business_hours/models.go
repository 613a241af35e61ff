package get_business_hours

import "github.com/m04kA/SMC-SalonService/internal/domain"

// BusinessHoursResponse HTTP response model
type BusinessHoursResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsOpen    bool   `json:"isOpen"`
}

// FromDomain конвертирует расписание в HTTP response
func FromDomain(hours []domain.BusinessHours) []BusinessHoursResponse {
	result := make([]BusinessHoursResponse, len(hours))
	for i, h := range hours {
		result[i] = BusinessHoursResponse{
			DayOfWeek: h.DayOfWeek,
			OpenTime:  h.OpenTime.String(),
			CloseTime: h.CloseTime.String(),
			IsOpen:    h.IsOpen,
		}
	}
	return result
}
