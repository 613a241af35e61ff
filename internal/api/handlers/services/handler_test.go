package services

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
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(t *testing.T) *mux.Router {
	t.Helper()

	svc := catalog.NewService(document.NewMemoryRepository(), nopLogger{})
	require.NoError(t, svc.Seed(context.Background(), catalog.DefaultServices()))

	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/services", h.List).Methods(http.MethodGet)
	r.HandleFunc("/services/{serviceId}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/admin/services", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/admin/services/{serviceId}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/admin/services/{serviceId}", h.Delete).Methods(http.MethodDelete)
	return r
}

func do(r *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func TestListServices(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/services", "")
	require.Equal(t, http.StatusOK, w.Code)
	var all []domain.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 4)

	w = do(r, http.MethodGet, "/services?category=HAIR", "")
	var hair []domain.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hair))
	assert.Len(t, hair, 2)
}

func TestServiceCRUD(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/admin/services", `{"name":"Pedicure","duration":40,"price":30,"category":"nails"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = do(r, http.MethodPut, "/admin/services/"+created.ID, `{"price":32.5}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated domain.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 32.5, updated.Price)
	assert.Equal(t, "Pedicure", updated.Name)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/services/"+created.ID, "").Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/admin/services/"+created.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/services/"+created.ID, "").Code)
}

func TestServiceValidation(t *testing.T) {
	r := newRouter(t)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/admin/services", `{"name":"","duration":40,"category":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/admin/services", `{"name":`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/admin/services/missing", `{"price":1}`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/admin/services/missing", "").Code)
}
