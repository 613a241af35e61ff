package list_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/admin/appointments
// Query params: date, status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseFilter(r.URL.Query().Get("date"), r.URL.Query().Get("status"))
	if err != nil {
		h.logger.Warn("GET /admin/appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	appointments := h.engine.Appointments()
	if filter.Date != "" {
		appointments = h.engine.AppointmentsByDate(filter.Date)
	}
	appointments = filter.Apply(appointments)

	h.logger.Info("GET /admin/appointments - Appointments retrieved successfully: date=%s, count=%d",
		filter.Date, len(appointments))
	handlers.RespondJSON(w, http.StatusOK, appointments)
}
