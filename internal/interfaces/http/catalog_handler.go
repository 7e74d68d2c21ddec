package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/usecase"
)

// CatalogHandler inicio y catálogo (público).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Home godoc
// @Summary      Página de inicio: productos disponibles y categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /app/home [get]
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	out, err := h.uc.Home(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Catálogo de productos
// @Tags         catalog
// @Produce      json
// @Param        search    query     string  false  "Palabra clave"
// @Param        category  query     string  false  "ID de categoría o all"
// @Success      200       {object}  dto.CatalogView
// @Router       /app/productos [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	var q dto.CatalogQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle de producto
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {object}  dto.ProductCard
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /app/productos/{id} [get]
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.Detail(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
