// internal/domain/review.go
package domain

import "time"

// Review is an immutable free-text review. Username is not checked against users.
type Review struct {
	ID        int64     `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Text      string    `db:"text" json:"text"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"` // Server-assigned submission time
}

// NewReview creates a new Review stamped with the current time.
func NewReview(username, text string) *Review {
	return &Review{
		Username:  username,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
