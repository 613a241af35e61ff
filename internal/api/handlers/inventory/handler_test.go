package inventory

import (
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
	inventoryService "github.com/m04kA/SMC-SalonService/internal/service/inventory"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func newRouter() *mux.Router {
	svc := inventoryService.NewService(document.NewMemoryRepository(), logger.NewNop())
	h := NewHandler(svc, logger.NewNop())

	r := mux.NewRouter()
	r.HandleFunc("/admin/inventory", h.List).Methods(http.MethodGet)
	r.HandleFunc("/admin/inventory", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/admin/inventory/low-stock", h.LowStock).Methods(http.MethodGet)
	r.HandleFunc("/admin/inventory/{itemId}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/admin/inventory/{itemId}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/admin/inventory/{itemId}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/admin/inventory/{itemId}/restock", h.Restock).Methods(http.MethodPost)
	return r
}

func do(r *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestInventoryFlow(t *testing.T) {
	r := newRouter()

	w := do(r, http.MethodPost, "/admin/inventory",
		`{"name":"Shampoo","category":"hair","currentQuantity":5,"idealQuantity":30,"price":12.5,"lowStockAlert":10}`)
	require.Equal(t, http.StatusCreated, w.Code)
	item := decode[domain.InventoryItem](t, w)

	w = do(r, http.MethodPost, "/admin/inventory",
		`{"name":"Nail polish","category":"nails","currentQuantity":40,"idealQuantity":40,"price":8,"lowStockAlert":5}`)
	require.Equal(t, http.StatusCreated, w.Code)

	low := decode[[]domain.InventoryItem](t, do(r, http.MethodGet, "/admin/inventory/low-stock", ""))
	require.Len(t, low, 1)
	assert.Equal(t, item.ID, low[0].ID)

	w = do(r, http.MethodPost, "/admin/inventory/"+item.ID+"/restock", `{"quantity":20}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 25, decode[domain.InventoryItem](t, w).CurrentQuantity)
	assert.Empty(t, decode[[]domain.InventoryItem](t, do(r, http.MethodGet, "/admin/inventory/low-stock", "")))

	w = do(r, http.MethodPut, "/admin/inventory/"+item.ID, `{"price":14}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 14.0, decode[domain.InventoryItem](t, w).Price)

	assert.Len(t, decode[[]domain.InventoryItem](t, do(r, http.MethodGet, "/admin/inventory?category=nails", "")), 1)
	assert.Len(t, decode[[]domain.InventoryItem](t, do(r, http.MethodGet, "/admin/inventory", "")), 2)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/admin/inventory/"+item.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/admin/inventory/"+item.ID, "").Code)
}

func TestInventoryValidation(t *testing.T) {
	r := newRouter()

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/admin/inventory", `{"name":"","category":"hair"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/admin/inventory", `{"name":"x","category":"hair","price":-1}`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/admin/inventory/missing/restock", `{"quantity":1}`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/admin/inventory/missing", `{"price":1}`).Code)
}
