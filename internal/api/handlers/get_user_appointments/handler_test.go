package get_user_appointments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeEngine struct{}

func (fakeEngine) AppointmentsByUser(userID string) []domain.Appointment {
	return []domain.Appointment{
		{ID: "a1", UserID: userID, Status: domain.StatusPending},
		{ID: "a2", UserID: userID, Status: domain.StatusCancelled},
	}
}

func serve(target string, user middleware.User) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/users/{userId}/appointments", NewHandler(fakeEngine{}, nopLogger{}).Handle)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(middleware.WithUser(req.Context(), user))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetUserAppointments(t *testing.T) {
	self := middleware.User{ID: "u1", Role: domain.RoleClient}

	w := serve("/users/u1/appointments", self)
	require.Equal(t, http.StatusOK, w.Code)
	var all []domain.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	w = serve("/users/u1/appointments?status=cancelled", self)
	require.Equal(t, http.StatusOK, w.Code)
	var cancelled []domain.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cancelled))
	require.Len(t, cancelled, 1)
	assert.Equal(t, "a2", cancelled[0].ID)

	assert.Equal(t, http.StatusBadRequest, serve("/users/u1/appointments?status=unknown", self).Code)
	assert.Equal(t, http.StatusForbidden, serve("/users/u2/appointments", self).Code)
	assert.Equal(t, http.StatusOK, serve("/users/u2/appointments", middleware.User{ID: "a", Role: domain.RoleAdmin}).Code)
}
