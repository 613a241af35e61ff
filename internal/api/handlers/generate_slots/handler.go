package generate_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration    = "некорректная длительность слота"
	msgSlotsOccupied      = "на дату есть занятые слоты, которые не попадают в новую нарезку"
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

// Handle POST /api/v1/admin/slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.SlotDurationMinutes != 0 &&
		(req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes) {
		h.logger.Warn("POST /admin/slots/generate - Invalid duration: %d", req.SlotDurationMinutes)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	if err := h.engine.GenerateSlots(r.Context(), req.Date, req.SlotDurationMinutes); err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidDate):
			h.logger.Warn("POST /admin/slots/generate - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return

		case errors.Is(err, booking.ErrSlotsOccupied):
			h.logger.Warn("POST /admin/slots/generate - Occupied slots block regeneration: date=%s, duration=%d",
				req.Date, req.SlotDurationMinutes)
			handlers.RespondConflict(w, msgSlotsOccupied)
			return
		}

		h.logger.Error("POST /admin/slots/generate - Failed to generate slots: date=%s, error=%v", req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	slots := h.engine.SlotsByDate(req.Date)

	h.logger.Info("POST /admin/slots/generate - Slots generated successfully: date=%s, count=%d", req.Date, len(slots))
	handlers.RespondJSON(w, http.StatusOK, GenerateSlotsResponse{Date: req.Date, Slots: slots})
}
