package sales

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/payments"
)

const (
	msgInvalidParams      = "некорректные параметры запроса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус платежа"
	msgNotFound           = "платеж не найден"
)

// Handler обработчики продаж и платежей
type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Sales GET /api/v1/admin/sales
// Query params: date | year и month | year
func (h *Handler) Sales(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q, err := ParseSalesQuery(query.Get("date"), query.Get("year"), query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /admin/sales - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	response := SalesResponse{Period: q.Period, Date: q.Date, Year: q.Year, Month: q.Month}
	switch q.Period {
	case PeriodDay:
		response.Total = h.service.DailySalesTotal(q.Date)
	case PeriodMonth:
		response.Total = h.service.MonthlySalesTotal(q.Year, q.Month)
	case PeriodYear:
		response.Total = h.service.YearlySalesTotal(q.Year)
	}

	h.logger.Info("GET /admin/sales - Sales retrieved successfully: period=%s, total=%.2f", q.Period, response.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}

// Payments GET /api/v1/admin/payments
// Query params: from и to (включительно) | date | userId | appointmentId
func (h *Handler) Payments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var result []domain.Payment
	switch {
	case query.Get("appointmentId") != "":
		result = h.service.ByAppointment(query.Get("appointmentId"))

	case query.Get("userId") != "":
		result = h.service.ByUser(query.Get("userId"))

	case query.Get("from") != "" || query.Get("to") != "":
		from, to := query.Get("from"), query.Get("to")
		if !isDate(from) || !isDate(to) || from > to {
			h.logger.Warn("GET /admin/payments - Invalid range: from=%s, to=%s", from, to)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		result = h.service.ByDateRange(from, to)

	default:
		date := query.Get("date")
		if date == "" {
			date = time.Now().UTC().Format(domain.DateFormat)
		}
		if !isDate(date) {
			h.logger.Warn("GET /admin/payments - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		result = h.service.ByDate(date)
	}

	h.logger.Info("GET /admin/payments - Payments retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateStatus PATCH /api/v1/admin/payments/{paymentId}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["paymentId"]

	var req UpdatePaymentStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/payments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status, ok := domain.ParsePaymentStatus(req.Status)
	if !ok {
		h.logger.Warn("PATCH /admin/payments/{id}/status - Invalid status: %s", req.Status)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), paymentID, status); err != nil {
		switch {
		case errors.Is(err, payments.ErrPaymentNotFound):
			h.logger.Warn("PATCH /admin/payments/{id}/status - Payment not found: payment_id=%s", paymentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, payments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /admin/payments/{id}/status - Failed to update status: payment_id=%s, error=%v",
				paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/payments/{id}/status - Status updated successfully: payment_id=%s, status=%s",
		paymentID, status)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"id": paymentID, "status": string(status)})
}

func isDate(s string) bool {
	_, err := time.Parse(domain.DateFormat, s)
	return err == nil
}
