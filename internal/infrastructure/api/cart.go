package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/domain/entity"
)

// CartAPI /api/cart/{userId}. El carrito vive en el backend.
type CartAPI struct {
	c *Client
}

func cartPath(userID string) string {
	return "/api/cart/" + url.PathEscape(userID)
}

func cartItemPath(userID, productID string) string {
	return cartPath(userID) + "/items/" + url.PathEscape(productID)
}

func (a *CartAPI) Get(ctx context.Context, userID string) (*dto.Envelope[entity.Cart], error) {
	return envelope[entity.Cart](ctx, a.c, request{method: http.MethodGet, path: cartPath(userID)})
}

func (a *CartAPI) AddItem(ctx context.Context, userID, productID string, quantity int) (*dto.Envelope[entity.Cart], error) {
	return envelope[entity.Cart](ctx, a.c, request{
		method: http.MethodPost,
		path:   cartPath(userID) + "/items",
		body:   dto.CartItemRequest{ProductID: productID, Quantity: quantity},
	})
}

func (a *CartAPI) UpdateItem(ctx context.Context, userID, productID string, quantity int) (*dto.Envelope[entity.Cart], error) {
	return envelope[entity.Cart](ctx, a.c, request{
		method: http.MethodPut,
		path:   cartItemPath(userID, productID),
		body:   dto.CartQuantityRequest{Quantity: quantity},
	})
}

func (a *CartAPI) RemoveItem(ctx context.Context, userID, productID string) (*dto.Envelope[entity.Cart], error) {
	return envelope[entity.Cart](ctx, a.c, request{method: http.MethodDelete, path: cartItemPath(userID, productID)})
}

func (a *CartAPI) Clear(ctx context.Context, userID string) (*dto.Envelope[entity.Cart], error) {
	return envelope[entity.Cart](ctx, a.c, request{method: http.MethodDelete, path: cartPath(userID)})
}
