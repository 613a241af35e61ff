package update_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/booking"
)

const (
	msgInvalidDayOfWeek   = "некорректный день недели, ожидается 0-6"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidData        = "время открытия должно быть раньше времени закрытия"
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

// Handle PUT /api/v1/admin/business-hours/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(mux.Vars(r)["dayOfWeek"])
	if err != nil || day < 0 || day > 6 {
		h.logger.Warn("PUT /admin/business-hours/{day} - Invalid day of week: %s", mux.Vars(r)["dayOfWeek"])
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	var req UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/business-hours/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		h.logger.Warn("PUT /admin/business-hours/{day} - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.engine.UpdateBusinessHour(r.Context(), day, patch)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidBusinessHours) {
			h.logger.Warn("PUT /admin/business-hours/{day} - Invalid hours: day=%d, error=%v", day, err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}

		h.logger.Error("PUT /admin/business-hours/{day} - Failed to update hours: day=%d, error=%v", day, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/business-hours/{day} - Business hours updated successfully: day=%d", day)
	handlers.RespondJSON(w, http.StatusOK, result)
}
