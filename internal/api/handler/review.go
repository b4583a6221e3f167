// internal/api/handler/review.go
package handler

import (
	"log/slog"
	"net/http"

	"celestial-store/internal/domain"
	"celestial-store/internal/service"
)

// ReviewHandler handles review submission and listing.
type ReviewHandler struct {
	responder
	service service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(svc service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// ReviewRequest is the request body for a review.
type ReviewRequest struct {
	Username string `json:"username" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

// SubmitReview handles the review submission request.
// POST /api/review
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if err := h.decodeRequest(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	if _, err := h.service.SubmitReview(r.Context(), req.Username, req.Text); err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Review submitted",
	})
}

// ListReviews returns every review, newest first.
// GET /api/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListReviews(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	h.respondWithJSON(w, http.StatusOK, reviews)
}
