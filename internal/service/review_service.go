// internal/service/review_service.go
package service

import (
	"context"
	"fmt"

	"celestial-store/internal/domain"
	"celestial-store/internal/repository"
)

// ReviewService records and lists free-text reviews.
type ReviewService interface {
	SubmitReview(ctx context.Context, username, text string) (*domain.Review, error)
	ListReviews(ctx context.Context) ([]domain.Review, error)
}

type reviewService struct {
	dbExecutor repository.DBExecutor
	reviewRepo repository.ReviewRepository
}

// NewReviewService creates a new instance of ReviewService.
func NewReviewService(dbExecutor repository.DBExecutor, reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{
		dbExecutor: dbExecutor,
		reviewRepo: reviewRepo,
	}
}

// SubmitReview stores a review stamped with the server time. The username is not
// checked against registered users.
func (s *reviewService) SubmitReview(ctx context.Context, username, text string) (*domain.Review, error) {
	review := domain.NewReview(username, text)
	if err := s.reviewRepo.CreateReview(ctx, s.dbExecutor, review); err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}
	return review, nil
}

// ListReviews returns every review, newest first.
func (s *reviewService) ListReviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.reviewRepo.ListReviews(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
