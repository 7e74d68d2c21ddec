package dto

import (
	"github.com/shopspring/decimal"

	"github.com/diedev/firex-web/internal/domain/entity"
)

// ProductRequest datos para crear o actualizar un producto (panel admin).
type ProductRequest struct {
	Name        string           `json:"name" validate:"required,min=3,max=100"`
	Description string           `json:"description" validate:"max=500"`
	Price       *decimal.Decimal `json:"price" validate:"required,min=0"`
	Stock       *int             `json:"stock" validate:"required,min=0"`
	CategoryID  string           `json:"categoryId" validate:"required"`
	ImageURL    string           `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// ProductCard vista de un producto en el catálogo.
type ProductCard struct {
	entity.Product
	PriceLabel   string            `json:"priceLabel"`
	StockLevel   entity.StockLevel `json:"stockLevel"`
	StockBadge   string            `json:"stockBadge,omitempty"`
	CanAddToCart bool              `json:"canAddToCart"`
}

// CatalogQuery filtros del listado de productos.
type CatalogQuery struct {
	Search     string `query:"search"`
	CategoryID string `query:"category"`
}

// CatalogView listado de productos con las categorías para el filtro.
type CatalogView struct {
	Products   []ProductCard     `json:"products"`
	Categories []entity.Category `json:"categories"`
	Query      CatalogQuery      `json:"query"`
}
