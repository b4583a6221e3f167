// internal/api/handler/purchase.go
package handler

import (
	"log/slog"
	"net/http"

	"celestial-store/internal/service"
)

// PurchaseHandler handles purchase requests.
type PurchaseHandler struct {
	responder
	service service.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(svc service.PurchaseService, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// PurchaseRequest is the request body for a purchase.
type PurchaseRequest struct {
	Username  string `json:"username" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}

// Purchase buys a product and returns its content with the new balance.
// POST /api/purchase
func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := h.decodeRequest(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	receipt, err := h.service.Purchase(r.Context(), req.Username, req.ProductID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Purchase successful",
		"fileUrl":     receipt.FileURL,
		"fileContent": receipt.FileContent,
		"balance":     receipt.Balance,
	})
}
