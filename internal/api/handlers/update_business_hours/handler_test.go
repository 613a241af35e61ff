package update_business_hours

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
	"github.com/m04kA/SMC-SalonService/internal/service/booking"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type emptyCatalog struct{}

func (emptyCatalog) GetService(context.Context, string) (*domain.Service, error) {
	return nil, assert.AnError
}

func serve(engine *booking.Engine, day, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/admin/business-hours/{dayOfWeek}", NewHandler(engine, nopLogger{}).Handle)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/admin/business-hours/"+day, strings.NewReader(body)))
	return w
}

func TestUpdateBusinessHours(t *testing.T) {
	engine := booking.NewEngine(booking.Config{}, emptyCatalog{}, document.NewMemoryRepository(), nil, nopLogger{})

	w := serve(engine, "0", `{"openTime":"10:00","closeTime":"14:00","isOpen":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.BusinessHours
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsOpen)
	assert.Equal(t, types.TimeString("10:00"), resp.OpenTime)

	w = serve(engine, "0", `{"closeTime":"18:00"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.TimeString("10:00"), resp.OpenTime)
	assert.Equal(t, types.TimeString("18:00"), resp.CloseTime)
}

func TestUpdateBusinessHoursInvalid(t *testing.T) {
	engine := booking.NewEngine(booking.Config{}, emptyCatalog{}, document.NewMemoryRepository(), nil, nopLogger{})

	assert.Equal(t, http.StatusBadRequest, serve(engine, "7", `{"isOpen":false}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(engine, "1", `{"openTime":"9am"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(engine, "1", `{"openTime":"19:00"}`).Code)
}
