// internal/repository/product_repo.go
package repository

import (
	"context"

	"celestial-store/internal/domain"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for catalog data operations.
type ProductRepository interface {
	// CreateProduct adds a product. Only seeding code and tests call this.
	CreateProduct(ctx context.Context, q DBExecutor, product *domain.Product) error
	// GetProductByID retrieves a product by its id, or util.ErrNotFound.
	GetProductByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Product, error)
	// ListProducts returns every product.
	ListProducts(ctx context.Context, q DBExecutor) ([]domain.Product, error)
}
