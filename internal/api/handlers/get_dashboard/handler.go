package get_dashboard

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/dashboard"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service DashboardService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/admin/dashboard
// Query params: date (опционально, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.now().UTC().Format(domain.DateFormat)
	}

	report, err := h.service.Daily(r.Context(), date)
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidDate) {
			h.logger.Warn("GET /admin/dashboard - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}

		h.logger.Error("GET /admin/dashboard - Failed to build report: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/dashboard - Report built successfully: date=%s", date)
	handlers.RespondJSON(w, http.StatusOK, report)
}
