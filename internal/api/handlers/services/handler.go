package services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "услуга не найдена"
	msgInvalidData        = "некорректные данные услуги"
)

// Handler обработчики каталога услуг
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/services
// Query params: category (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var result []domain.Service
	if category != "" {
		result = h.service.ListByCategory(r.Context(), category)
	} else {
		result = h.service.List(r.Context())
	}

	h.logger.Info("GET /services - Services retrieved successfully: category=%s, count=%d", category, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/services/{serviceId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	result, err := h.service.GetService(r.Context(), serviceID)
	if err != nil {
		h.respondError(w, "GET /services/{id}", serviceID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/admin/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceInput())
	if err != nil {
		h.respondError(w, "POST /admin/services", "", err)
		return
	}

	h.logger.Info("POST /admin/services - Service created successfully: service_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/admin/services/{serviceId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	var req UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), serviceID, req.ToServicePatch())
	if err != nil {
		h.respondError(w, "PUT /admin/services/{id}", serviceID, err)
		return
	}

	h.logger.Info("PUT /admin/services/{id} - Service updated successfully: service_id=%s", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/admin/services/{serviceId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	if err := h.service.Delete(r.Context(), serviceID); err != nil {
		h.respondError(w, "DELETE /admin/services/{id}", serviceID, err)
		return
	}

	h.logger.Info("DELETE /admin/services/{id} - Service deleted successfully: service_id=%s", serviceID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route, serviceID string, err error) {
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: service_id=%s", route, serviceID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	default:
		h.logger.Error("%s - Failed: service_id=%s, error=%v", route, serviceID, err)
		handlers.RespondInternalError(w)
	}
}
