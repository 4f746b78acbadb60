package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"rocketshoes-cart/internal/models"
	"rocketshoes-cart/internal/repositories"
)

type fakeOracle struct {
	mu           sync.Mutex
	stock        map[int64]int
	products     map[int64]models.Product
	stockErr     error
	productErr   error
	stockCalls   int
	productCalls int
	listCalls    int

	// stockGate, when set, parks every GetStock until it is closed.
	stockGate chan struct{}
	// stockEntered receives once per GetStock that reaches the gate.
	stockEntered chan struct{}
}

func newFakeOracle() *fakeOracle {
	return &fakeOracle{
		stock:    map[int64]int{},
		products: map[int64]models.Product{},
	}
}

func (f *fakeOracle) withProduct(id int64, title string, price float64, stock int) *fakeOracle {
	f.products[id] = models.Product{
		ID:    id,
		Title: title,
		Price: price,
		Image: fmt.Sprintf("https://rocketseat-cdn.s3-sa-east-1.amazonaws.com/modulo-redux/tenis%d.jpg", id),
	}
	f.stock[id] = stock
	return f
}

func (f *fakeOracle) GetStock(_ context.Context, productID int64) (*models.Stock, error) {
	f.mu.Lock()
	gate, entered := f.stockGate, f.stockEntered
	f.mu.Unlock()
	if gate != nil {
		if entered != nil {
			entered <- struct{}{}
		}
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.stockCalls++
	if f.stockErr != nil {
		return nil, f.stockErr
	}
	amount, ok := f.stock[productID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &models.Stock{ID: productID, Amount: amount}, nil
}

func (f *fakeOracle) GetProduct(_ context.Context, productID int64) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.productCalls++
	if f.productErr != nil {
		return nil, f.productErr
	}
	p, ok := f.products[productID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (f *fakeOracle) ListProducts(_ context.Context) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	out := make([]models.Product, 0, len(f.products))
	for id := int64(1); len(out) < len(f.products); id++ {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	items []Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

func (r *recordingNotifier) all() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

// flakyStore wraps a MemoryStore and fails writes while failWrites is set.
type flakyStore struct {
	*repositories.MemoryStore
	failWrites bool
	writes     int
}

var errDiskFull = errors.New("disk full")

func (s *flakyStore) Write(ctx context.Context, key string, blob []byte) error {
	s.writes++
	if s.failWrites {
		return errDiskFull
	}
	return s.MemoryStore.Write(ctx, key, blob)
}
