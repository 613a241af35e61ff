package inventory

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	inventoryService "github.com/m04kA/SMC-SalonService/internal/service/inventory"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "позиция склада не найдена"
	msgInvalidData        = "некорректные данные позиции склада"
)

// Handler обработчики складского учета
type Handler struct {
	service InventoryService
	logger  Logger
}

func NewHandler(service InventoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/inventory
// Query params: category (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var result []domain.InventoryItem
	if category != "" {
		result = h.service.ByCategory(category)
	} else {
		result = h.service.List()
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// LowStock GET /api/v1/admin/inventory/low-stock
func (h *Handler) LowStock(w http.ResponseWriter, r *http.Request) {
	result := h.service.LowStock()

	h.logger.Info("GET /admin/inventory/low-stock - Low stock items: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/admin/inventory/{itemId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	result, err := h.service.Get(itemID)
	if err != nil {
		h.respondError(w, "GET /admin/inventory/{id}", itemID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/admin/inventory
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/inventory - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), req.ToItemInput())
	if err != nil {
		h.respondError(w, "POST /admin/inventory", "", err)
		return
	}

	h.logger.Info("POST /admin/inventory - Item created successfully: item_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/admin/inventory/{itemId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	var req UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/inventory/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), itemID, req.ToItemPatch())
	if err != nil {
		h.respondError(w, "PUT /admin/inventory/{id}", itemID, err)
		return
	}

	h.logger.Info("PUT /admin/inventory/{id} - Item updated successfully: item_id=%s", itemID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Restock POST /api/v1/admin/inventory/{itemId}/restock
func (h *Handler) Restock(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	var req RestockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/inventory/{id}/restock - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Restock(r.Context(), itemID, req.Quantity)
	if err != nil {
		h.respondError(w, "POST /admin/inventory/{id}/restock", itemID, err)
		return
	}

	h.logger.Info("POST /admin/inventory/{id}/restock - Item restocked: item_id=%s, quantity=%d",
		itemID, result.CurrentQuantity)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/admin/inventory/{itemId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	if err := h.service.Delete(r.Context(), itemID); err != nil {
		h.respondError(w, "DELETE /admin/inventory/{id}", itemID, err)
		return
	}

	h.logger.Info("DELETE /admin/inventory/{id} - Item deleted successfully: item_id=%s", itemID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route, itemID string, err error) {
	switch {
	case errors.Is(err, inventoryService.ErrItemNotFound):
		h.logger.Warn("%s - Item not found: item_id=%s", route, itemID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, inventoryService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	default:
		h.logger.Error("%s - Failed: item_id=%s, error=%v", route, itemID, err)
		handlers.RespondInternalError(w)
	}
}
