package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/domain/entity"
)

const productsPath = "/api/products"

// DefaultLowStockThreshold umbral por defecto de /api/products/low-stock.
const DefaultLowStockThreshold = 10

// ProductsAPI /api/products.
type ProductsAPI struct {
	c *Client
}

func (a *ProductsAPI) GetAll(ctx context.Context) (*dto.Envelope[[]entity.Product], error) {
	return envelope[[]entity.Product](ctx, a.c, request{method: http.MethodGet, path: productsPath})
}

func (a *ProductsAPI) GetByID(ctx context.Context, id string) (*dto.Envelope[entity.Product], error) {
	return envelope[entity.Product](ctx, a.c, request{method: http.MethodGet, path: productsPath + "/" + url.PathEscape(id)})
}

func (a *ProductsAPI) Create(ctx context.Context, in dto.ProductRequest) (*dto.Envelope[entity.Product], error) {
	return envelope[entity.Product](ctx, a.c, request{method: http.MethodPost, path: productsPath, body: in})
}

func (a *ProductsAPI) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.Envelope[entity.Product], error) {
	return envelope[entity.Product](ctx, a.c, request{method: http.MethodPut, path: productsPath + "/" + url.PathEscape(id), body: in})
}

func (a *ProductsAPI) Delete(ctx context.Context, id string) (*dto.Envelope[any], error) {
	return envelope[any](ctx, a.c, request{method: http.MethodDelete, path: productsPath + "/" + url.PathEscape(id)})
}

// Search GET /api/products/search?keyword=...
func (a *ProductsAPI) Search(ctx context.Context, keyword string) (*dto.Envelope[[]entity.Product], error) {
	q := url.Values{"keyword": {keyword}}
	return envelope[[]entity.Product](ctx, a.c, request{method: http.MethodGet, path: productsPath + "/search?" + q.Encode()})
}

// ByCategory GET /api/products/category/{categoryId}
func (a *ProductsAPI) ByCategory(ctx context.Context, categoryID string) (*dto.Envelope[[]entity.Product], error) {
	return envelope[[]entity.Product](ctx, a.c, request{method: http.MethodGet, path: productsPath + "/category/" + url.PathEscape(categoryID)})
}

// Available productos con stock > 0.
func (a *ProductsAPI) Available(ctx context.Context) (*dto.Envelope[[]entity.Product], error) {
	return envelope[[]entity.Product](ctx, a.c, request{method: http.MethodGet, path: productsPath + "/available"})
}

// LowStock productos con stock menor al umbral; threshold <= 0 usa DefaultLowStockThreshold.
func (a *ProductsAPI) LowStock(ctx context.Context, threshold int) (*dto.Envelope[[]entity.Product], error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return envelope[[]entity.Product](ctx, a.c, request{
		method: http.MethodGet,
		path:   productsPath + "/low-stock?threshold=" + strconv.Itoa(threshold),
	})
}

// envelope atajo para respuestas {success, message, data}.
func envelope[T any](ctx context.Context, c *Client, r request) (*dto.Envelope[T], error) {
	out, err := call[dto.Envelope[T]](ctx, c, r)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
