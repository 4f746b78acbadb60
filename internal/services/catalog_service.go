package services

import (
	"context"

	"rocketshoes-cart/internal/models"
	"rocketshoes-cart/internal/repositories"

	"golang.org/x/sync/errgroup"
)

// CartReader is the read side of CartService.
type CartReader interface {
	Cart() models.Cart
}

// CatalogProduct is a catalog entry annotated for the storefront listing.
type CatalogProduct struct {
	models.Product
	AmountInCart int  `json:"amount_in_cart"`
	Stock        *int `json:"stock,omitempty"`
}

type CatalogService struct {
	oracle      repositories.StockOracle
	cart        CartReader
	concurrency int
}

func NewCatalogService(oracle repositories.StockOracle, cart CartReader) *CatalogService {
	return &CatalogService{oracle: oracle, cart: cart, concurrency: 8}
}

// ListProducts returns every catalog product with the amount currently in the
// cart. withStock also fetches live stock per product; any lookup failure
// fails the whole listing.
func (s *CatalogService) ListProducts(ctx context.Context, withStock bool) ([]CatalogProduct, error) {
	products, err := s.oracle.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	amounts := s.cart.Cart().Amounts()
	out := make([]CatalogProduct, len(products))
	for i, p := range products {
		out[i] = CatalogProduct{Product: p, AmountInCart: amounts[p.ID]}
	}

	if !withStock {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range out {
		i := i
		g.Go(func() error {
			stock, err := s.oracle.GetStock(gctx, out[i].ID)
			if err != nil {
				return err
			}
			available := stock.Amount
			out[i].Stock = &available
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
