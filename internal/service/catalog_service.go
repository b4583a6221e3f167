// internal/service/catalog_service.go
package service

import (
	"context"
	"fmt"

	"celestial-store/internal/domain"
	"celestial-store/internal/repository"
)

// CatalogService lists purchasable products.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type catalogService struct {
	dbExecutor  repository.DBExecutor
	productRepo repository.ProductRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(dbExecutor repository.DBExecutor, productRepo repository.ProductRepository) CatalogService {
	return &catalogService{
		dbExecutor:  dbExecutor,
		productRepo: productRepo,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
