package entity

import "github.com/shopspring/decimal"

// CartItem línea del carrito. Subtotal lo calcula el backend.
type CartItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Cart carrito de un usuario; vive en el servidor, el cliente sólo lo muestra.
type Cart struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// IsEmpty indica si el carrito no tiene ítems.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}
