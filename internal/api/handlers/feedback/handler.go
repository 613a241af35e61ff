package feedback

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	feedbackService "github.com/m04kA/SMC-SalonService/internal/service/feedback"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidData          = "некорректные данные отзыва, оценка от 1 до 5"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAppointmentNotFound  = "запись не найдена"
	msgFeedbackNotFound     = "отзыв не найден"
	msgForbidden            = "доступ запрещен"
	msgAlreadyExists        = "отзыв на эту запись уже оставлен"
	msgAppointmentCancelled = "нельзя оставить отзыв на отмененную запись"
)

// Handler обработчики отзывов
type Handler struct {
	service FeedbackService
	logger  Logger
}

func NewHandler(service FeedbackService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/feedback
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("POST /feedback - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateFeedbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /feedback - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), req.ToInput(user))
	if err != nil {
		h.respondError(w, "POST /feedback", err)
		return
	}

	h.logger.Info("POST /feedback - Feedback created successfully: feedback_id=%s, appointment_id=%s",
		result.ID, result.AppointmentID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// ListMine GET /api/v1/feedback
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /feedback - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.service.ByUser(user.ID))
}

// List GET /api/v1/admin/feedback
// Query params: date, service (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	serviceName := r.URL.Query().Get("service")

	var feedback []domain.Feedback
	if date != "" {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			h.logger.Warn("GET /admin/feedback - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		feedback = h.service.ByDate(date)
	} else {
		feedback = h.service.ByDate(time.Now().UTC().Format(domain.DateFormat))
	}

	response := FeedbackListResponse{
		Feedback:      feedback,
		AverageRating: h.service.AverageRating(),
	}
	if serviceName != "" {
		rating := h.service.AverageRatingByService(serviceName)
		response.Service = serviceName
		response.ServiceRating = &rating
	}

	h.logger.Info("GET /admin/feedback - Feedback retrieved successfully: date=%s, count=%d", date, len(feedback))
	handlers.RespondJSON(w, http.StatusOK, response)
}

// Update PUT /api/v1/admin/feedback/{feedbackId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	feedbackID := mux.Vars(r)["feedbackId"]

	var req UpdateFeedbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/feedback/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), feedbackID, req.ToPatch())
	if err != nil {
		h.respondError(w, "PUT /admin/feedback/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/admin/feedback/{feedbackId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	feedbackID := mux.Vars(r)["feedbackId"]

	if err := h.service.Delete(r.Context(), feedbackID); err != nil {
		h.respondError(w, "DELETE /admin/feedback/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/feedback/{id} - Feedback deleted successfully: feedback_id=%s", feedbackID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, feedbackService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	case errors.Is(err, feedbackService.ErrAppointmentNotFound):
		h.logger.Warn("%s - Appointment not found", route)
		handlers.RespondNotFound(w, msgAppointmentNotFound)

	case errors.Is(err, feedbackService.ErrFeedbackNotFound):
		h.logger.Warn("%s - Feedback not found", route)
		handlers.RespondNotFound(w, msgFeedbackNotFound)

	case errors.Is(err, feedbackService.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, feedbackService.ErrAlreadyExists):
		h.logger.Warn("%s - Feedback already exists", route)
		handlers.RespondConflict(w, msgAlreadyExists)

	case errors.Is(err, feedbackService.ErrAppointmentCancelled):
		h.logger.Warn("%s - Appointment cancelled", route)
		handlers.RespondBadRequest(w, msgAppointmentCancelled)

	default:
		h.logger.Error("%s - Failed: error=%v", route, err)
		handlers.RespondInternalError(w)
	}
}
