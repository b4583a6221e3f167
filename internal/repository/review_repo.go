// internal/repository/review_repo.go
package repository

import (
	"context"

	"celestial-store/internal/domain"
)

// ReviewRepository defines the interface for review data operations.
type ReviewRepository interface {
	// CreateReview stores a review and sets its ID.
	CreateReview(ctx context.Context, q DBExecutor, review *domain.Review) error
	// ListReviews returns all reviews, newest first.
	ListReviews(ctx context.Context, q DBExecutor) ([]domain.Review, error)
}
