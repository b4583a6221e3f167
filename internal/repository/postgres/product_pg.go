// internal/repository/postgres/product_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"celestial-store/internal/domain"
	"celestial-store/internal/repository"
	"celestial-store/internal/util"

	"github.com/google/uuid"
)

// ProductRepository implements repository.ProductRepository for PostgreSQL.
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository() repository.ProductRepository {
	return &ProductRepository{}
}

// CreateProduct inserts a product using the provided DBExecutor.
func (r *ProductRepository) CreateProduct(ctx context.Context, q repository.DBExecutor, product *domain.Product) error {
	query := `INSERT INTO products (id, title, description, price, file_url, file_content, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q.ExecContext(ctx, query,
		product.ID,
		product.Title,
		product.Description,
		product.Price,
		product.FileURL,
		product.FileContent,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetProductByID retrieves a product by its ID using the provided DBExecutor.
func (r *ProductRepository) GetProductByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	query := `SELECT id, title, description, price, file_url, file_content, created_at FROM products WHERE id = $1`
	err := q.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// ListProducts returns the whole catalog.
func (r *ProductRepository) ListProducts(ctx context.Context, q repository.DBExecutor) ([]domain.Product, error) {
	products := []domain.Product{}
	query := `SELECT id, title, description, price, file_url, file_content, created_at FROM products`
	if err := q.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
