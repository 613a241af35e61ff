package sales

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
	"github.com/m04kA/SMC-SalonService/internal/service/payments"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func newRouter(t *testing.T) (*mux.Router, string) {
	t.Helper()

	svc := payments.NewService(document.NewMemoryRepository(), logger.NewNop())
	var firstID string
	for i, p := range []struct {
		appointment, user, date string
		amount                  float64
	}{
		{"a1", "u1", "2030-01-07", 45},
		{"a2", "u2", "2030-01-07", 90},
		{"a3", "u1", "2030-01-20", 35},
		{"a4", "u3", "2030-02-01", 70},
	} {
		id, err := svc.RecordBookingPayment(context.Background(), domain.BookingEvent{
			AppointmentID: p.appointment, UserID: p.user, Amount: p.amount, Service: "Haircut", Date: p.date,
		})
		require.NoError(t, err)
		if i == 0 {
			firstID = id
		}
	}

	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/admin/sales", h.Sales).Methods(http.MethodGet)
	r.HandleFunc("/admin/payments", h.Payments).Methods(http.MethodGet)
	r.HandleFunc("/admin/payments/{paymentId}/status", h.UpdateStatus).Methods(http.MethodPatch)
	return r, firstID
}

func do(r *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func sales(t *testing.T, r *mux.Router, query string) SalesResponse {
	t.Helper()
	w := do(r, http.MethodGet, "/admin/sales?"+query, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp SalesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSales(t *testing.T) {
	r, _ := newRouter(t)

	assert.Equal(t, 135.0, sales(t, r, "date=2030-01-07").Total)
	assert.Equal(t, 170.0, sales(t, r, "year=2030&month=1").Total)
	assert.Equal(t, 240.0, sales(t, r, "year=2030").Total)
	assert.Equal(t, PeriodYear, sales(t, r, "year=2030").Period)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/admin/sales", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/admin/sales?year=2030&month=13", "").Code)
}

func TestPayments(t *testing.T) {
	r, firstID := newRouter(t)

	list := func(query string) []domain.Payment {
		w := do(r, http.MethodGet, "/admin/payments?"+query, "")
		require.Equal(t, http.StatusOK, w.Code)
		var result []domain.Payment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		return result
	}

	assert.Len(t, list("from=2030-01-01&to=2030-01-31"), 3)
	assert.Len(t, list("userId=u1"), 2)
	assert.Len(t, list("appointmentId=a4"), 1)
	assert.Len(t, list("date=2030-01-07"), 2)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/admin/payments?from=2030-02-01&to=2030-01-01", "").Code)

	w := do(r, http.MethodPatch, "/admin/payments/"+firstID+"/status", `{"status":"failed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 90.0, sales(t, r, "date=2030-01-07").Total)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPatch, "/admin/payments/"+firstID+"/status", `{"status":"lost"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPatch, "/admin/payments/missing/status", `{"status":"paid"}`).Code)
}
