package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"rocketshoes-cart/internal/models"
	"rocketshoes-cart/internal/repositories"
	"rocketshoes-cart/pkg/cache"
	"rocketshoes-cart/pkg/logger"
)

const (
	catalogProductPrefix = "catalog:product"
	catalogListPrefix    = "catalog"
	catalogListKey       = "products"
)

// CatalogCache is satisfied by cache.RedisCache.
type CatalogCache interface {
	GetWithPrefix(ctx context.Context, prefix, key string, dest interface{}) error
	SetWithPrefix(ctx context.Context, prefix, key string, value interface{}, expiration time.Duration) error
}

// CachedStockOracle caches catalog data in front of another oracle. Stock is
// never cached: it is the upper bound every mutation checks against.
type CachedStockOracle struct {
	next  repositories.StockOracle
	cache CatalogCache
	ttl   time.Duration
	log   *logger.Logger
}

func NewCachedStockOracle(next repositories.StockOracle, c CatalogCache, ttl time.Duration, log *logger.Logger) *CachedStockOracle {
	return &CachedStockOracle{next: next, cache: c, ttl: ttl, log: log}
}

func (o *CachedStockOracle) GetStock(ctx context.Context, productID int64) (*models.Stock, error) {
	return o.next.GetStock(ctx, productID)
}

func (o *CachedStockOracle) GetProduct(ctx context.Context, productID int64) (*models.Product, error) {
	key := strconv.FormatInt(productID, 10)

	var cached models.Product
	if err := o.cache.GetWithPrefix(ctx, catalogProductPrefix, key, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		o.log.Warn("catalog cache read failed", "product_id", productID, "error", err)
	}

	product, err := o.next.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := o.cache.SetWithPrefix(ctx, catalogProductPrefix, key, product, o.ttl); err != nil {
		o.log.Warn("catalog cache write failed", "product_id", productID, "error", err)
	}
	return product, nil
}

func (o *CachedStockOracle) ListProducts(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	if err := o.cache.GetWithPrefix(ctx, catalogListPrefix, catalogListKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		o.log.Warn("catalog cache read failed", "key", catalogListKey, "error", err)
	}

	products, err := o.next.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if err := o.cache.SetWithPrefix(ctx, catalogListPrefix, catalogListKey, products, o.ttl); err != nil {
		o.log.Warn("catalog cache write failed", "key", catalogListKey, "error", err)
	}
	return products, nil
}
