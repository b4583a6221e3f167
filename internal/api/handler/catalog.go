// internal/api/handler/catalog.go
package handler

import (
	"log/slog"
	"net/http"

	"celestial-store/internal/domain"
	"celestial-store/internal/service"
)

// CatalogHandler serves the product listing.
type CatalogHandler struct {
	responder
	service service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// ListProducts handles the product listing request.
// GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	h.respondWithJSON(w, http.StatusOK, products)
}
