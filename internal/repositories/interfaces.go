package repositories

import (
	"context"
	"errors"

	"rocketshoes-cart/internal/models"
)

// ErrNotFound is returned by stores and oracles when the requested key or
// product does not exist.
var ErrNotFound = errors.New("not found")

// CartStore persists the serialized cart under a fixed key.
type CartStore interface {
	// Read returns ErrNotFound when no blob is stored under key.
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, blob []byte) error
}

// StockOracle answers stock and catalog questions for a product ID.
type StockOracle interface {
	GetStock(ctx context.Context, productID int64) (*models.Stock, error)
	GetProduct(ctx context.Context, productID int64) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
}
