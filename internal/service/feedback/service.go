package feedback

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
)

// Service отзывы клиентов
type Service struct {
	mu           sync.RWMutex
	appointments AppointmentReader
	store        DocumentStore
	timeProvider TimeProvider
	logger       Logger
	feedbacks    map[string]*domain.Feedback
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(appointments AppointmentReader, store DocumentStore, logger Logger) *Service {
	return &Service{
		appointments: appointments,
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		feedbacks:    make(map[string]*domain.Feedback),
	}
}

// SetTimeProvider подменяет источник времени
func (s *Service) SetTimeProvider(tp TimeProvider) {
	s.timeProvider = tp
}

// Restore загружает отзывы из хранилища
func (s *Service) Restore(ctx context.Context) error {
	docs, err := s.store.Load(ctx, domain.KindFeedback)
	if err != nil {
		return fmt.Errorf("%w: Restore - load feedback: %v", ErrInternal, err)
	}
	feedbacks, err := document.Decode[domain.Feedback](docs)
	if err != nil {
		return fmt.Errorf("%w: Restore - decode feedback: %v", ErrInternal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range feedbacks {
		f := feedbacks[i]
		s.feedbacks[f.ID] = &f
	}

	s.logger.Info("Restore: loaded %d feedback entries", len(feedbacks))
	return nil
}

// Add добавляет отзыв на запись пользователя.
// На одну запись допускается один отзыв, отмененные записи не оцениваются.
func (s *Service) Add(ctx context.Context, input Input) (*domain.Feedback, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}
	if len(input.Comment) > domain.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment is longer than %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	appointment, ok := s.appointments.Appointment(input.AppointmentID)
	if !ok {
		s.logger.Warn("Add: appointment id=%s not found", input.AppointmentID)
		return nil, ErrAppointmentNotFound
	}
	if appointment.UserID != input.UserID {
		s.logger.Warn("Add: user=%s is not the owner of appointment id=%s", input.UserID, input.AppointmentID)
		return nil, ErrAccessDenied
	}
	if appointment.Status == domain.StatusCancelled {
		return nil, ErrAppointmentCancelled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.feedbacks {
		if existing.AppointmentID == input.AppointmentID {
			return nil, ErrAlreadyExists
		}
	}

	f := &domain.Feedback{
		ID:            uuid.NewString(),
		AppointmentID: input.AppointmentID,
		UserID:        input.UserID,
		UserName:      input.UserName,
		Rating:        input.Rating,
		Comment:       input.Comment,
		Date:          s.timeProvider.Now().UTC().Format(domain.DateFormat),
	}
	if err := s.save(ctx, "Add", f); err != nil {
		return nil, err
	}

	s.feedbacks[f.ID] = f
	s.logger.Info("Add: feedback id=%s appointment=%s rating=%d", f.ID, f.AppointmentID, f.Rating)

	result := *f
	return &result, nil
}

// Update обновляет оценку или комментарий
func (s *Service) Update(ctx context.Context, feedbackID string, patch Patch) (*domain.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.feedbacks[feedbackID]
	if !ok {
		return nil, ErrFeedbackNotFound
	}

	updated := *current
	if patch.Rating != nil {
		if err := validateRating(*patch.Rating); err != nil {
			return nil, err
		}
		updated.Rating = *patch.Rating
	}
	if patch.Comment != nil {
		updated.Comment = *patch.Comment
	}

	if err := s.save(ctx, "Update", &updated); err != nil {
		return nil, err
	}

	s.feedbacks[feedbackID] = &updated
	result := updated
	return &result, nil
}

// Delete удаляет отзыв
func (s *Service) Delete(ctx context.Context, feedbackID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.feedbacks[feedbackID]; !ok {
		return ErrFeedbackNotFound
	}

	batch := document.NewBatch()
	batch.Delete(domain.KindFeedback, feedbackID)
	if err := s.store.Apply(ctx, batch); err != nil {
		s.logger.Error("Delete: failed to persist feedback id=%s: %v", feedbackID, err)
		return fmt.Errorf("%w: Delete - apply batch: %v", ErrInternal, err)
	}

	delete(s.feedbacks, feedbackID)
	return nil
}

// ByUser возвращает отзывы пользователя
func (s *Service) ByUser(userID string) []domain.Feedback {
	return s.filter(func(f *domain.Feedback) bool { return f.UserID == userID })
}

// ByDate возвращает отзывы за дату
func (s *Service) ByDate(date string) []domain.Feedback {
	return s.filter(func(f *domain.Feedback) bool { return f.Date == date })
}

// ByAppointment возвращает отзыв на запись
func (s *Service) ByAppointment(appointmentID string) (domain.Feedback, bool) {
	found := s.filter(func(f *domain.Feedback) bool { return f.AppointmentID == appointmentID })
	if len(found) == 0 {
		return domain.Feedback{}, false
	}
	return found[0], true
}

// AverageRating средняя оценка по всем отзывам, 0 если отзывов нет
func (s *Service) AverageRating() float64 {
	return average(s.filter(func(*domain.Feedback) bool { return true }))
}

// AverageRatingByService средняя оценка записей на услугу с указанным названием
func (s *Service) AverageRatingByService(serviceName string) float64 {
	return average(s.filter(func(f *domain.Feedback) bool {
		appointment, ok := s.appointments.Appointment(f.AppointmentID)
		return ok && appointment.ServiceName == serviceName
	}))
}

func average(feedbacks []domain.Feedback) float64 {
	if len(feedbacks) == 0 {
		return 0
	}
	total := 0
	for _, f := range feedbacks {
		total += f.Rating
	}
	return float64(total) / float64(len(feedbacks))
}

func validateRating(rating int) error {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	return nil
}

func (s *Service) filter(match func(f *domain.Feedback) bool) []domain.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Feedback, 0)
	for _, f := range s.feedbacks {
		if match(f) {
			result = append(result, *f)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// save вызывается под s.mu
func (s *Service) save(ctx context.Context, op string, f *domain.Feedback) error {
	batch := document.NewBatch()
	if err := batch.Put(domain.KindFeedback, f.ID, f); err != nil {
		return fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
	}
	if err := s.store.Apply(ctx, batch); err != nil {
		s.logger.Error("%s: failed to persist feedback id=%s: %v", op, f.ID, err)
		return fmt.Errorf("%w: %s - apply batch: %v", ErrInternal, op, err)
	}
	return nil
}
