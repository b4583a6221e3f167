// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"celestial-store/internal/domain"
	"celestial-store/internal/repository"
	"celestial-store/internal/util"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct{}

// NewUserRepository creates a new UserRepository.
// Methods receive the DBExecutor so they can run inside or outside a transaction.
func NewUserRepository() repository.UserRepository {
	return &UserRepository{}
}

// CreateUser inserts a new user into the database using the provided DBExecutor.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (username, password_hash, balance, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query, user.Username, user.PasswordHash, user.Balance, user.CreatedAt, user.UpdatedAt).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrDuplicateUser
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByUsername retrieves a user by their username using the provided DBExecutor.
func (r *UserRepository) GetUserByUsername(ctx context.Context, q repository.DBExecutor, username string) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, username, password_hash, balance, created_at, updated_at FROM users WHERE username = $1`
	err := q.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username '%s': %w", username, err)
	}
	return &user, nil
}

// AddToBalance applies amount to the balance in a single statement and returns the result.
func (r *UserRepository) AddToBalance(ctx context.Context, q repository.DBExecutor, username string, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	query := `UPDATE users SET balance = balance + $1, updated_at = $2 WHERE username = $3 RETURNING balance`
	err := q.GetContext(ctx, &balance, query, amount, time.Now().UTC(), username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, util.ErrNotFound
		}
		if isNumericOverflow(err) {
			return decimal.Zero, fmt.Errorf("balance of '%s' out of range: %w", username, util.ErrInvalidInput)
		}
		return decimal.Zero, fmt.Errorf("failed to add to balance of '%s': %w", username, err)
	}
	return balance, nil
}

// DebitBalance subtracts amount only while balance >= amount. The guard lives in the
// UPDATE itself so two concurrent debits cannot both pass it.
func (r *UserRepository) DebitBalance(ctx context.Context, q repository.DBExecutor, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	query := `UPDATE users SET balance = balance - $1, updated_at = $2
              WHERE id = $3 AND balance >= $1 RETURNING balance`
	err := q.GetContext(ctx, &balance, query, amount, time.Now().UTC(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, util.ErrInsufficientFunds
		}
		return decimal.Zero, fmt.Errorf("failed to debit balance for user ID %d: %w", userID, err)
	}
	return balance, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}

func isNumericOverflow(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "numeric_value_out_of_range"
}
