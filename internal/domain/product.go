// internal/domain/product.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a purchasable digital item. Products are seeded outside the API.
type Product struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Title       string          `db:"title" json:"title"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	FileURL     *string         `db:"file_url" json:"fileUrl,omitempty"`         // Optional download link
	FileContent *string         `db:"file_content" json:"fileContent,omitempty"` // Optional inline content
	CreatedAt   time.Time       `db:"created_at" json:"-"`
}

// NewProduct creates a new Product with a fresh id.
func NewProduct(title, description string, price decimal.Decimal, fileURL, fileContent *string) *Product {
	return &Product{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Price:       price,
		FileURL:     fileURL,
		FileContent: fileContent,
		CreatedAt:   time.Now().UTC(),
	}
}

// Receipt is what a buyer gets back from a successful purchase.
type Receipt struct {
	FileURL     *string         // nil when the product has no link
	FileContent string          // empty when the product has no inline content
	Balance     decimal.Decimal // balance after the debit
}

// NewReceipt releases the purchased content of p.
func NewReceipt(p *Product, balance decimal.Decimal) *Receipt {
	r := &Receipt{Balance: balance}
	if p.FileURL != nil && *p.FileURL != "" {
		url := *p.FileURL
		r.FileURL = &url
	}
	if p.FileContent != nil {
		r.FileContent = *p.FileContent
	}
	return r
}
