// internal/service/account_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"celestial-store/internal/auth"
	"celestial-store/internal/domain"
	"celestial-store/internal/repository"
	"celestial-store/internal/util"

	"github.com/shopspring/decimal"
)

// AccountService defines registration, login and balance top-up.
type AccountService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
	TopUp(ctx context.Context, username string, amount decimal.Decimal) (decimal.Decimal, error)
}

// accountService implements the AccountService interface.
type accountService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	hasher     auth.PasswordHasher
}

// NewAccountService creates a new instance of AccountService.
func NewAccountService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	hasher auth.PasswordHasher,
) AccountService {
	return &accountService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		hasher:     hasher,
	}
}

// Register creates a user with a zero balance. The unique index on username
// catches registrations that race past the existence check.
func (s *accountService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, util.ErrInvalidInput
	}

	_, err := s.userRepo.GetUserByUsername(ctx, s.dbExecutor, username)
	if err == nil {
		return nil, util.ErrDuplicateUser
	}
	if !errors.Is(err, util.ErrNotFound) {
		return nil, fmt.Errorf("register: failed to check existing user: %w", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := domain.NewUser(username, hashed)
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		if errors.Is(err, util.ErrDuplicateUser) {
			return nil, util.ErrDuplicateUser
		}
		return nil, fmt.Errorf("register: failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials. Unknown user and wrong password both yield util.ErrInvalidCredentials.
func (s *accountService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, s.dbExecutor, username)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: failed to get user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, util.ErrInvalidCredentials
	}
	return user, nil
}

// TopUp adds amount to the user's balance. Zero and negative amounts are applied as-is.
func (s *accountService) TopUp(ctx context.Context, username string, amount decimal.Decimal) (decimal.Decimal, error) {
	balance, err := s.userRepo.AddToBalance(ctx, s.dbExecutor, username, amount)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return decimal.Zero, util.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("top up: failed to update balance: %w", err)
	}
	return balance, nil
}
