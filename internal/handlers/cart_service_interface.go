package handlers

import (
	"context"

	"rocketshoes-cart/internal/models"
	"rocketshoes-cart/internal/services"
)

// CartServiceInterface defines the contract for cart service
type CartServiceInterface interface {
	Cart() models.Cart
	AddProduct(ctx context.Context, productID int64) (models.Cart, error)
	RemoveProduct(ctx context.Context, productID int64) (models.Cart, error)
	UpdateProductAmount(ctx context.Context, req services.UpdateProductAmount) (models.Cart, error)
}
