package update_business_hours

import (
	"github.com/m04kA/SMC-SalonService/internal/service/booking"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UpdateBusinessHoursRequest HTTP request model; отсутствующие поля не меняются
type UpdateBusinessHoursRequest struct {
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
	IsOpen    *bool   `json:"isOpen,omitempty"`
}

// ToPatch конвертирует HTTP request в частичное обновление движка
func (r *UpdateBusinessHoursRequest) ToPatch() (booking.BusinessHoursPatch, error) {
	patch := booking.BusinessHoursPatch{IsOpen: r.IsOpen}

	if r.OpenTime != nil {
		open, err := types.NewTimeStringFromString(*r.OpenTime)
		if err != nil {
			return patch, err
		}
		patch.OpenTime = &open
	}

	if r.CloseTime != nil {
		closeTime, err := types.NewTimeStringFromString(*r.CloseTime)
		if err != nil {
			return patch, err
		}
		patch.CloseTime = &closeTime
	}

	return patch, nil
}
