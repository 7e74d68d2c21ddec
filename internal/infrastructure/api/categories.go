package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/domain/entity"
)

const categoriesPath = "/api/categories"

// CategoriesAPI CRUD de /api/categories.
type CategoriesAPI struct {
	c *Client
}

func (a *CategoriesAPI) GetAll(ctx context.Context) (*dto.Envelope[[]entity.Category], error) {
	return envelope[[]entity.Category](ctx, a.c, request{method: http.MethodGet, path: categoriesPath})
}

func (a *CategoriesAPI) GetByID(ctx context.Context, id string) (*dto.Envelope[entity.Category], error) {
	return envelope[entity.Category](ctx, a.c, request{method: http.MethodGet, path: categoriesPath + "/" + url.PathEscape(id)})
}

func (a *CategoriesAPI) Create(ctx context.Context, in dto.CategoryRequest) (*dto.Envelope[entity.Category], error) {
	return envelope[entity.Category](ctx, a.c, request{method: http.MethodPost, path: categoriesPath, body: in})
}

func (a *CategoriesAPI) Update(ctx context.Context, id string, in dto.CategoryRequest) (*dto.Envelope[entity.Category], error) {
	return envelope[entity.Category](ctx, a.c, request{method: http.MethodPut, path: categoriesPath + "/" + url.PathEscape(id), body: in})
}

func (a *CategoriesAPI) Delete(ctx context.Context, id string) (*dto.Envelope[any], error) {
	return envelope[any](ctx, a.c, request{method: http.MethodDelete, path: categoriesPath + "/" + url.PathEscape(id)})
}
