// internal/repository/user_repo.go
package repository

import (
	"context"

	"celestial-store/internal/domain"

	"github.com/shopspring/decimal"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user. A taken username yields util.ErrDuplicateUser.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByUsername retrieves a user by exact username, or util.ErrNotFound.
	GetUserByUsername(ctx context.Context, q DBExecutor, username string) (*domain.User, error)
	// AddToBalance adds amount (of any sign) to the user's balance and returns the new balance.
	// An unknown username yields util.ErrNotFound.
	AddToBalance(ctx context.Context, q DBExecutor, username string, amount decimal.Decimal) (decimal.Decimal, error)
	// DebitBalance subtracts amount only if the balance covers it, and returns the new balance.
	// It yields util.ErrInsufficientFunds when the balance is too low at write time.
	DebitBalance(ctx context.Context, q DBExecutor, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
}
