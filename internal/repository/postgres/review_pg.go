// internal/repository/postgres/review_pg.go
package postgres

import (
	"context"
	"fmt"

	"celestial-store/internal/domain"
	"celestial-store/internal/repository"
)

// ReviewRepository implements repository.ReviewRepository for PostgreSQL.
type ReviewRepository struct{}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository() repository.ReviewRepository {
	return &ReviewRepository{}
}

// CreateReview inserts a review record using the provided DBExecutor.
func (r *ReviewRepository) CreateReview(ctx context.Context, q repository.DBExecutor, review *domain.Review) error {
	query := `INSERT INTO reviews (username, text, created_at) VALUES ($1, $2, $3) RETURNING id`
	if err := q.QueryRowContext(ctx, query, review.Username, review.Text, review.CreatedAt).Scan(&review.ID); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ListReviews returns all reviews ordered by submission time, most recent first.
// Ties on created_at fall back to insertion order.
func (r *ReviewRepository) ListReviews(ctx context.Context, q repository.DBExecutor) ([]domain.Review, error) {
	reviews := []domain.Review{}
	query := `SELECT id, username, text, created_at FROM reviews ORDER BY created_at DESC, id DESC`
	if err := q.SelectContext(ctx, &reviews, query); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
