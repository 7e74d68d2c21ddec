package usecase

import (
	"context"
	"fmt"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/ports"
	"github.com/diedev/firex-web/internal/application/session"
	"github.com/diedev/firex-web/internal/domain"
)

// Mensajes de confirmación del carrito.
const (
	MsgCartItemAdded   = "Producto agregado al carrito"
	MsgCartUpdated     = "La cantidad se actualizó correctamente"
	MsgCartItemRemoved = "El producto se eliminó del carrito"
	MsgCartCleared     = "Se eliminaron todos los productos del carrito"
)

// CartUseCase carrito del usuario autenticado. Los totales los calcula el backend.
type CartUseCase struct {
	cart     ports.CartAPI
	products ports.ProductsAPI
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cart ports.CartAPI, products ports.ProductsAPI) *CartUseCase {
	return &CartUseCase{cart: cart, products: products}
}

// View carrito actual.
func (uc *CartUseCase) View(ctx context.Context, h *session.Holder) (*dto.CartView, error) {
	u, err := requireUser(h)
	if err != nil {
		return nil, err
	}
	res, err := uc.cart.Get(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return cartView(&res.Data, ""), nil
}

// Add agrega un producto. Se rechaza sin llamar al carrito si el producto no tiene stock
// o si la cantidad supera el stock disponible.
func (uc *CartUseCase) Add(ctx context.Context, h *session.Holder, productID string, quantity int) (*dto.CartView, error) {
	u, err := requireUser(h)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: la cantidad debe ser al menos 1", domain.ErrInvalidInput)
	}
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !p.Data.Purchasable() {
		return nil, domain.ErrOutOfStock
	}
	if quantity > p.Data.Stock {
		return nil, fmt.Errorf("%w: solo hay %d unidades disponibles", domain.ErrInvalidInput, p.Data.Stock)
	}

	res, err := uc.cart.AddItem(ctx, u.ID, productID, quantity)
	if err != nil {
		return nil, err
	}
	return cartView(&res.Data, MsgCartItemAdded), nil
}

// UpdateQuantity cambia la cantidad de un ítem. Con quantity < 1 no hace nada y devuelve nil.
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, h *session.Holder, productID string, quantity int) (*dto.CartView, error) {
	u, err := requireUser(h)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, nil
	}
	res, err := uc.cart.UpdateItem(ctx, u.ID, productID, quantity)
	if err != nil {
		return nil, err
	}
	return cartView(&res.Data, MsgCartUpdated), nil
}

// Remove quita un producto del carrito.
func (uc *CartUseCase) Remove(ctx context.Context, h *session.Holder, productID string) (*dto.CartView, error) {
	u, err := requireUser(h)
	if err != nil {
		return nil, err
	}
	res, err := uc.cart.RemoveItem(ctx, u.ID, productID)
	if err != nil {
		return nil, err
	}
	return cartView(&res.Data, MsgCartItemRemoved), nil
}

// Clear vacía el carrito.
func (uc *CartUseCase) Clear(ctx context.Context, h *session.Holder) (*dto.CartView, error) {
	u, err := requireUser(h)
	if err != nil {
		return nil, err
	}
	res, err := uc.cart.Clear(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return cartView(&res.Data, MsgCartCleared), nil
}
