package feedback

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	feedbackService "github.com/m04kA/SMC-SalonService/internal/service/feedback"
)

type FeedbackService interface {
	Add(ctx context.Context, input feedbackService.Input) (*domain.Feedback, error)
	Update(ctx context.Context, feedbackID string, patch feedbackService.Patch) (*domain.Feedback, error)
	Delete(ctx context.Context, feedbackID string) error
	ByUser(userID string) []domain.Feedback
	ByDate(date string) []domain.Feedback
	AverageRating() float64
	AverageRatingByService(serviceName string) float64
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
