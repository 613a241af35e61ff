package cancel_appointment

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "запись не найдена"
	msgForbidden     = "доступ запрещен"
	msgCannotCancel  = "запись не может быть отменена"
)

type Handler struct {
	engine BookingEngine
	logger Logger
}

func NewHandler(engine BookingEngine, logger Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
// Отменить запись может ее владелец или администратор
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	appointment, ok := h.engine.Appointment(appointmentID)
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment not found: appointment_id=%s", appointmentID)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	if appointment.UserID != user.ID && !user.IsAdmin() {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Access denied: appointment_id=%s, user_id=%s",
			appointmentID, user.ID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if !appointment.CanBeCancelled() {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Cannot cancel: appointment_id=%s, status=%s",
			appointmentID, appointment.Status)
		handlers.RespondBadRequest(w, msgCannotCancel)
		return
	}

	if err := h.engine.CancelAppointment(r.Context(), appointmentID); err != nil {
		h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel appointment: appointment_id=%s, error=%v",
			appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	cancelled, _ := h.engine.Appointment(appointmentID)

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled successfully: appointment_id=%s, user_id=%s",
		appointmentID, user.ID)
	handlers.RespondJSON(w, http.StatusOK, CancelAppointmentResponse{
		ID:     cancelled.ID,
		SlotID: cancelled.SlotID,
		Status: string(cancelled.Status),
	})
}
