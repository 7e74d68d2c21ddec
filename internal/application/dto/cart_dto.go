package dto

import "github.com/diedev/firex-web/internal/domain/entity"

// CartItemRequest cuerpo de POST /api/cart/{userId}/items.
type CartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartQuantityRequest cuerpo de PUT /api/cart/{userId}/items/{productId}.
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartView carrito con totales formateados.
type CartView struct {
	Cart            *entity.Cart `json:"cart"`
	Empty           bool         `json:"empty"`
	TotalPriceLabel string       `json:"totalPriceLabel"`
	Message         string       `json:"message,omitempty"`
}
