package get_dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/service/dashboard"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type fakeDashboard struct {
	got string
}

func (f *fakeDashboard) Daily(_ context.Context, date string) (*dashboard.Report, error) {
	f.got = date
	if date == "bad" {
		return nil, fmt.Errorf("%w: %s", dashboard.ErrInvalidDate, date)
	}
	return &dashboard.Report{Date: date, DailySales: 125, Appointments: dashboard.AppointmentStats{Total: 3, Pending: 2}}, nil
}

func TestGetDashboard(t *testing.T) {
	svc := &fakeDashboard{}
	h := NewHandler(svc, logger.NewNop())
	h.now = func() time.Time { return time.Date(2030, 1, 7, 12, 0, 0, 0, time.UTC) }

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2030-01-07", svc.got)

	var report dashboard.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 125.0, report.DailySales)
	assert.Equal(t, 2, report.Appointments.Pending)

	w = httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard?date=bad", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDashboardDefaultDateIsUTC(t *testing.T) {
	svc := &fakeDashboard{}
	h := NewHandler(svc, logger.NewNop())
	moscow := time.FixedZone("UTC+3", 3*60*60)
	h.now = func() time.Time { return time.Date(2030, 1, 8, 1, 0, 0, 0, moscow) }

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2030-01-07", svc.got)
}
