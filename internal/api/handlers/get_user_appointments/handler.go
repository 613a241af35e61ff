package get_user_appointments

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgInvalidStatus = "некорректный статус записи"
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

// Handle GET /api/v1/users/{userId}/appointments
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if user.ID != userID && !user.IsAdmin() {
		h.logger.Warn("GET /users/{userId}/appointments - Access denied: user_id=%s, requested=%s", user.ID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var status *domain.AppointmentStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, ok := domain.ParseAppointmentStatus(raw)
		if !ok {
			h.logger.Warn("GET /users/{userId}/appointments - Invalid status: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = &parsed
	}

	appointments := h.engine.AppointmentsByUser(userID)
	if status != nil {
		filtered := make([]domain.Appointment, 0, len(appointments))
		for _, a := range appointments {
			if a.Status == *status {
				filtered = append(filtered, a)
			}
		}
		appointments = filtered
	}

	h.logger.Info("GET /users/{userId}/appointments - Appointments retrieved successfully: user_id=%s, count=%d",
		userID, len(appointments))
	handlers.RespondJSON(w, http.StatusOK, appointments)
}
