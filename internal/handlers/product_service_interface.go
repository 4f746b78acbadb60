package handlers

import (
	"context"

	"rocketshoes-cart/internal/services"
)

// CatalogServiceInterface defines the contract for the storefront product listing
type CatalogServiceInterface interface {
	ListProducts(ctx context.Context, withStock bool) ([]services.CatalogProduct, error)
}
