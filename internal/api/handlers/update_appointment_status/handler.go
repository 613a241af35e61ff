package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус"
	msgNotFound           = "запись не найдена"
	msgInvalidTransition  = "недопустимая смена статуса записи"
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

// Handle PATCH /api/v1/admin/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status, payment, err := req.Parse()
	if err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid status: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	if _, ok := h.engine.Appointment(appointmentID); !ok {
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Appointment not found: appointment_id=%s", appointmentID)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	if status != nil {
		if err := h.engine.UpdateAppointmentStatus(r.Context(), appointmentID, *status); err != nil {
			h.respondEngineError(w, appointmentID, err)
			return
		}
	}

	if payment != nil {
		if err := h.engine.UpdatePaymentStatus(r.Context(), appointmentID, *payment); err != nil {
			h.respondEngineError(w, appointmentID, err)
			return
		}
	}

	updated, _ := h.engine.Appointment(appointmentID)

	h.logger.Info("PATCH /admin/appointments/{id}/status - Status updated successfully: appointment_id=%s, status=%s, payment=%s",
		appointmentID, updated.Status, updated.PaymentStatus)
	handlers.RespondJSON(w, http.StatusOK, updated)
}

func (h *Handler) respondEngineError(w http.ResponseWriter, appointmentID string, err error) {
	switch {
	case errors.Is(err, booking.ErrAppointmentNotFound):
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Appointment not found: appointment_id=%s", appointmentID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, booking.ErrInvalidTransition):
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid transition: appointment_id=%s, error=%v",
			appointmentID, err)
		handlers.RespondConflict(w, msgInvalidTransition)

	case errors.Is(err, booking.ErrInvalidStatus):
		handlers.RespondBadRequest(w, msgInvalidStatus)

	default:
		h.logger.Error("PATCH /admin/appointments/{id}/status - Failed to update status: appointment_id=%s, error=%v",
			appointmentID, err)
		handlers.RespondInternalError(w)
	}
}
