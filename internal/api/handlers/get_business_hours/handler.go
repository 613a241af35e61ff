package get_business_hours

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
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

// Handle GET /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hours := h.engine.BusinessHours()

	h.logger.Info("GET /business-hours - Business hours retrieved successfully: days=%d", len(hours))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(hours))
}
