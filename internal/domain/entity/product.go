package entity

import "github.com/shopspring/decimal"

// LowStockThreshold a partir de este stock (inclusive) la tarjeta muestra "Últimas N unidades".
const LowStockThreshold = 10

// StockLevel nivel de stock mostrado como badge.
type StockLevel string

const (
	StockOut     StockLevel = "out_of_stock"
	StockLow     StockLevel = "low_stock"
	StockInStock StockLevel = "in_stock"
)

// Product producto del catálogo. Price en pesos colombianos.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryId"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	CreatedAt   Timestamp       `json:"createdAt,omitempty"`
	UpdatedAt   Timestamp       `json:"updatedAt,omitempty"`
}

// StockLevel: stock 0 deshabilita "agregar al carrito"; stock <= 10 es stock bajo.
func (p Product) StockLevel() StockLevel {
	switch {
	case p.Stock <= 0:
		return StockOut
	case p.Stock <= LowStockThreshold:
		return StockLow
	default:
		return StockInStock
	}
}

// Purchasable indica si se puede agregar al carrito.
func (p Product) Purchasable() bool {
	return p.Stock > 0
}
