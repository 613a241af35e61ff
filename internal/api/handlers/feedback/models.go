package feedback

import (
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	feedbackService "github.com/m04kA/SMC-SalonService/internal/service/feedback"
)

// CreateFeedbackRequest HTTP request model
type CreateFeedbackRequest struct {
	AppointmentID string `json:"appointmentId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
}

// UpdateFeedbackRequest HTTP request model
type UpdateFeedbackRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

// FeedbackListResponse отзывы вместе со средними оценками
type FeedbackListResponse struct {
	Feedback      []domain.Feedback `json:"feedback"`
	AverageRating float64           `json:"averageRating"`
	Service       string            `json:"service,omitempty"`
	ServiceRating *float64          `json:"serviceRating,omitempty"`
}

func (r *CreateFeedbackRequest) ToInput(user middleware.User) feedbackService.Input {
	return feedbackService.Input{
		AppointmentID: r.AppointmentID,
		UserID:        user.ID,
		UserName:      user.Name,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

func (r *UpdateFeedbackRequest) ToPatch() feedbackService.Patch {
	return feedbackService.Patch{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}
