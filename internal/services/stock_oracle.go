package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"rocketshoes-cart/internal/models"
	"rocketshoes-cart/internal/repositories"
)

// HTTPStockOracle talks to the stock API:
//
//	GET {base}/stock/{id}     -> {"id": 1, "amount": 3}
//	GET {base}/products/{id}  -> {"id": 1, "title": "...", "price": 179.9, "image": "..."}
//	GET {base}/products       -> [ ...products ]
// maxResponseBytes caps how much of a stock API response is decoded.
const maxResponseBytes = 1 << 20

type HTTPStockOracle struct {
	baseURL string
	client  *http.Client
}

func NewHTTPStockOracle(baseURL string, timeout time.Duration) *HTTPStockOracle {
	return &HTTPStockOracle{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (o *HTTPStockOracle) GetStock(ctx context.Context, productID int64) (*models.Stock, error) {
	var stock models.Stock
	if err := o.getJSON(ctx, "/stock/"+strconv.FormatInt(productID, 10), &stock); err != nil {
		return nil, fmt.Errorf("get stock %d: %w", productID, err)
	}
	return &stock, nil
}

func (o *HTTPStockOracle) GetProduct(ctx context.Context, productID int64) (*models.Product, error) {
	var product models.Product
	if err := o.getJSON(ctx, "/products/"+strconv.FormatInt(productID, 10), &product); err != nil {
		return nil, fmt.Errorf("get product %d: %w", productID, err)
	}
	return &product, nil
}

func (o *HTTPStockOracle) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := o.getJSON(ctx, "/products", &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (o *HTTPStockOracle) getJSON(ctx context.Context, path string, dest interface{}) error {
	endpoint, err := url.JoinPath(o.baseURL, path)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return repositories.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("stock api responded %s", resp.Status)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(dest); err != nil {
		return fmt.Errorf("decode stock api response: %w", err)
	}
	return nil
}
