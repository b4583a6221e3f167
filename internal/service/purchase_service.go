// internal/service/purchase_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"celestial-store/internal/domain"
	"celestial-store/internal/repository"
	"celestial-store/internal/util"
	"celestial-store/pkg/db"

	"github.com/google/uuid"
)

// PurchaseService buys a product with the user's balance.
type PurchaseService interface {
	Purchase(ctx context.Context, username, productID string) (*domain.Receipt, error)
}

// purchaseService implements the PurchaseService interface.
type purchaseService struct {
	dbBeginner  db.DBTxBeginner // For starting transactions (e.g., *sqlx.DB)
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	beginTx     db.BeginTxFunc
	commitTx    db.CommitTxFunc
	rollbackTx  db.RollbackTxFunc
}

// NewPurchaseService creates a new instance of PurchaseService.
func NewPurchaseService(
	dbBeginner db.DBTxBeginner,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) PurchaseService {
	return &purchaseService{
		dbBeginner:  dbBeginner,
		userRepo:    userRepo,
		productRepo: productRepo,
		beginTx:     beginTx,
		commitTx:    commitTx,
		rollbackTx:  rollbackTx,
	}
}

// Purchase debits the product price from the user's balance and releases the
// product's content. The debit is conditional on the balance still covering
// the price, so concurrent purchases can never overdraw.
func (s *purchaseService) Purchase(ctx context.Context, username, productID string) (*domain.Receipt, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("purchase: malformed product id %q: %w", productID, util.ErrNotFound)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("purchase: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("purchase: transaction controller does not implement DBExecutor")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, txExecutor, username)
	if err != nil {
		return nil, fmt.Errorf("purchase: failed to get user '%s': %w", username, err)
	}
	product, err := s.productRepo.GetProductByID(ctx, txExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("purchase: failed to get product %s: %w", id, err)
	}

	if !user.CanAfford(product.Price) {
		return nil, util.ErrInsufficientFunds
	}

	balance, err := s.userRepo.DebitBalance(ctx, txExecutor, user.ID, product.Price)
	if err != nil {
		if errors.Is(err, util.ErrInsufficientFunds) {
			return nil, util.ErrInsufficientFunds
		}
		return nil, fmt.Errorf("purchase: failed to debit balance: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("purchase: failed to commit transaction: %w", err)
	}

	return domain.NewReceipt(product, balance), nil
}
