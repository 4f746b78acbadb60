package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"rocketshoes-cart/internal/models"
	"rocketshoes-cart/internal/repositories"
	"rocketshoes-cart/pkg/logger"
)

// CartService owns the cart. Every mutation is validated against the stock
// oracle, written to the store in full and only then committed in memory.
// Mutations are serialized by mu, held across their oracle lookups. Readers
// only take stateMu, so a slow lookup never blocks Cart.
type CartService struct {
	store      repositories.CartStore
	oracle     repositories.StockOracle
	notifier   Notifier
	storageKey string
	log        *logger.Logger

	mu      sync.Mutex
	stateMu sync.RWMutex
	cart    models.Cart
}

type UpdateProductAmount struct {
	ProductID int64 `json:"product_id"`
	Amount    int   `json:"amount"`
}

// NewCartService loads the stored cart. A missing, unreadable or malformed
// blob yields an empty cart.
func NewCartService(
	ctx context.Context,
	store repositories.CartStore,
	oracle repositories.StockOracle,
	notifier Notifier,
	storageKey string,
	log *logger.Logger,
) *CartService {
	s := &CartService{
		store:      store,
		oracle:     oracle,
		notifier:   notifier,
		storageKey: storageKey,
		log:        log.With("component", "cart"),
	}
	s.cart = s.load(ctx)
	return s
}

func (s *CartService) load(ctx context.Context) models.Cart {
	blob, err := s.store.Read(ctx, s.storageKey)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.Cart{}
	}
	if err != nil {
		s.log.Warn("failed to read stored cart, starting empty", "key", s.storageKey, "error", err)
		return models.Cart{}
	}

	var stored models.Cart
	if err := json.Unmarshal(blob, &stored); err != nil {
		s.log.Warn("stored cart is malformed, starting empty", "key", s.storageKey, "error", err)
		return models.Cart{}
	}

	// Drop entries that break the cart invariants instead of trusting the blob.
	cart := make(models.Cart, 0, len(stored))
	for _, item := range stored {
		if item.Amount < 1 || cart.IndexOf(item.ID) >= 0 {
			s.log.Warn("dropping invalid stored cart item", "product_id", item.ID, "amount", item.Amount)
			continue
		}
		cart = append(cart, item)
	}

	s.log.Info("cart loaded", "items", len(cart))
	return cart
}

// Cart returns a snapshot of the current cart.
func (s *CartService) Cart() models.Cart {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.cart.Clone()
}

// AddProduct adds one unit of productID, fetching its catalog data when it is
// not yet in the cart.
func (s *CartService) AddProduct(ctx context.Context, productID int64) (models.Cart, error) {
	cart, err := s.addProduct(ctx, productID)
	if err != nil {
		s.report(ctx, err)
		return nil, err
	}
	return cart, nil
}

func (s *CartService) addProduct(ctx context.Context, productID int64) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cart.Clone()
	idx := next.IndexOf(productID)
	current := 0
	if idx >= 0 {
		current = next[idx].Amount
	}

	stock, err := s.oracle.GetStock(ctx, productID)
	if err != nil {
		return nil, opError(OpAdd, productID, ErrOracleFailure, err)
	}

	desired := current + 1
	if desired > stock.Amount {
		return nil, opError(OpAdd, productID, ErrStockExceeded, nil)
	}

	if idx >= 0 {
		next[idx].Amount = desired
	} else {
		product, err := s.oracle.GetProduct(ctx, productID)
		if err != nil {
			return nil, opError(OpAdd, productID, ErrOracleFailure, err)
		}
		item := models.CartItem{Product: *product, Amount: 1}
		item.ID = productID
		next = append(next, item)
	}

	if err := s.commit(ctx, OpAdd, productID, next); err != nil {
		return nil, err
	}

	s.log.Info("product added", "product_id", productID, "amount", desired)
	return next.Clone(), nil
}

// RemoveProduct removes productID entirely. Removing a product that is not in
// the cart is an error.
func (s *CartService) RemoveProduct(ctx context.Context, productID int64) (models.Cart, error) {
	cart, err := s.removeProduct(ctx, productID)
	if err != nil {
		s.report(ctx, err)
		return nil, err
	}
	return cart, nil
}

func (s *CartService) removeProduct(ctx context.Context, productID int64) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.cart.IndexOf(productID)
	if idx < 0 {
		return nil, opError(OpRemove, productID, ErrItemNotFound, nil)
	}

	next := make(models.Cart, 0, len(s.cart)-1)
	next = append(next, s.cart[:idx]...)
	next = append(next, s.cart[idx+1:]...)

	if err := s.commit(ctx, OpRemove, productID, next); err != nil {
		return nil, err
	}

	s.log.Info("product removed", "product_id", productID)
	return next.Clone(), nil
}

// UpdateProductAmount sets an absolute amount for a product already in the
// cart. A non-positive amount is ignored and returns the current cart.
func (s *CartService) UpdateProductAmount(ctx context.Context, req UpdateProductAmount) (models.Cart, error) {
	cart, err := s.updateProductAmount(ctx, req)
	if err != nil {
		s.report(ctx, err)
		return nil, err
	}
	return cart, nil
}

func (s *CartService) updateProductAmount(ctx context.Context, req UpdateProductAmount) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Amount <= 0 {
		return s.cart.Clone(), nil
	}

	stock, err := s.oracle.GetStock(ctx, req.ProductID)
	if err != nil {
		return nil, opError(OpUpdate, req.ProductID, ErrOracleFailure, err)
	}

	if req.Amount > stock.Amount {
		return nil, opError(OpUpdate, req.ProductID, ErrStockExceeded, nil)
	}

	next := s.cart.Clone()
	idx := next.IndexOf(req.ProductID)
	if idx < 0 {
		return nil, opError(OpUpdate, req.ProductID, ErrItemNotFound, nil)
	}
	next[idx].Amount = req.Amount

	if err := s.commit(ctx, OpUpdate, req.ProductID, next); err != nil {
		return nil, err
	}

	s.log.Info("product amount updated", "product_id", req.ProductID, "amount", req.Amount)
	return next.Clone(), nil
}

// commit writes next to the store and, only if that succeeds, makes it the
// current cart. Callers hold s.mu, so s.cart only changes here.
func (s *CartService) commit(ctx context.Context, op Op, productID int64, next models.Cart) error {
	blob, err := json.Marshal(next)
	if err != nil {
		return opError(op, productID, ErrPersistFailed, err)
	}

	if err := s.store.Write(ctx, s.storageKey, blob); err != nil {
		return opError(op, productID, ErrPersistFailed, err)
	}

	s.stateMu.Lock()
	s.cart = next
	s.stateMu.Unlock()
	return nil
}

// report logs a failed operation and raises its single user notification.
func (s *CartService) report(ctx context.Context, err error) {
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		s.log.Error("unexpected cart error", "error", err)
		return
	}

	s.log.Warn("cart operation failed",
		"op", opErr.Op,
		"product_id", opErr.ProductID,
		"kind", KindOf(opErr),
		"error", err,
	)

	s.notifier.Notify(ctx, Notification{
		Kind:      KindOf(opErr),
		Op:        opErr.Op,
		ProductID: opErr.ProductID,
		Message:   opErr.Message(),
	})
}

func opError(op Op, productID int64, kind, cause error) *OperationError {
	return &OperationError{Op: op, ProductID: productID, Kind: kind, Err: cause}
}
