package update_appointment_status

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeEngine struct {
	appointment domain.Appointment
}

func (f *fakeEngine) Appointment(id string) (domain.Appointment, bool) {
	return f.appointment, id == f.appointment.ID
}

func (f *fakeEngine) UpdateAppointmentStatus(_ context.Context, _ string, status domain.AppointmentStatus) error {
	if !f.appointment.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", booking.ErrInvalidTransition, f.appointment.Status, status)
	}
	f.appointment.Status = status
	return nil
}

func (f *fakeEngine) UpdatePaymentStatus(_ context.Context, _ string, status domain.PaymentStatus) error {
	f.appointment.PaymentStatus = status
	return nil
}

func serve(engine *fakeEngine, id, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/admin/appointments/{appointmentId}/status", NewHandler(engine, nopLogger{}).Handle)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/admin/appointments/"+id+"/status", strings.NewReader(body)))
	return w
}

func TestUpdateStatus(t *testing.T) {
	engine := &fakeEngine{appointment: domain.Appointment{ID: "a1", Status: domain.StatusPending, PaymentStatus: domain.PaymentPending}}

	w := serve(engine, "a1", `{"status":"confirmed","paymentStatus":"paid"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, domain.PaymentPaid, resp.PaymentStatus)
}

func TestUpdateStatusErrors(t *testing.T) {
	engine := &fakeEngine{appointment: domain.Appointment{ID: "a1", Status: domain.StatusCompleted}}

	assert.Equal(t, http.StatusConflict, serve(engine, "a1", `{"status":"confirmed"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(engine, "a1", `{"status":"scheduled"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(engine, "a1", `{}`).Code)
	assert.Equal(t, http.StatusNotFound, serve(engine, "a2", `{"status":"confirmed"}`).Code)
}
