package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/usecase"
)

// AdminHandler panel de administración (requiere rol ADMIN).
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Tarjetas del panel
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.DashboardStats
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /app/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext(), GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── Solicitudes ──

// Requests godoc
// @Summary      Solicitudes de servicio
// @Tags         admin
// @Produce      json
// @Param        status  query     string  false  "Estado o ALL"
// @Param        search  query     string  false  "Código, email o dirección"
// @Success      200     {object}  dto.RequestsView
// @Router       /app/admin/solicitudes [get]
func (h *AdminHandler) Requests(c *fiber.Ctx) error {
	var q dto.RequestsQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Requests(c.UserContext(), GetSession(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RequestStats godoc
// @Summary      Conteo de solicitudes por estado
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.RequestStats
// @Router       /app/admin/solicitudes/stats [get]
func (h *AdminHandler) RequestStats(c *fiber.Ctx) error {
	out, err := h.uc.RequestStats(c.UserContext(), GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una solicitud
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "ID de la solicitud"
// @Param        body  body      dto.UpdateStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.ServiceRequestView
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /app/admin/solicitudes/{id}/estado [put]
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), GetSession(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteRequest godoc
// @Summary      Eliminar solicitud
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "ID de la solicitud"
// @Success      200  {object}  dto.MessageResponse
// @Router       /app/admin/solicitudes/{id} [delete]
func (h *AdminHandler) DeleteRequest(c *fiber.Ctx) error {
	if err := h.uc.DeleteRequest(c.UserContext(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Solicitud eliminada"})
}

// ── Usuarios ──

// Users godoc
// @Summary      Usuarios
// @Tags         admin
// @Produce      json
// @Param        search  query     string  false  "Nombre o email"
// @Success      200     {object}  dto.UsersView
// @Router       /app/admin/usuarios [get]
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	out, err := h.uc.Users(c.UserContext(), GetSession(c), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteUser godoc
// @Summary      Eliminar usuario
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Router       /app/admin/usuarios/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.uc.DeleteUser(c.UserContext(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Usuario eliminado"})
}

// ── Categorías ──

// Categories godoc
// @Summary      Categorías
// @Tags         admin
// @Produce      json
// @Success      200  {array}  entity.Category
// @Router       /app/admin/categorias [get]
func (h *AdminHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.UserContext(), GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SaveCategory godoc
// @Summary      Crear o actualizar categoría
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string               false  "ID (sólo al actualizar)"
// @Param        body  body      dto.CategoryRequest  true   "Datos"
// @Success      200   {object}  entity.Category
// @Success      201   {object}  entity.Category
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /app/admin/categorias [post]
// @Router       /app/admin/categorias/{id} [put]
func (h *AdminHandler) SaveCategory(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id := c.Params("id")
	out, err := h.uc.SaveCategory(c.UserContext(), GetSession(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(savedStatus(id)).JSON(out)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "ID de la categoría"
// @Success      200  {object}  dto.MessageResponse
// @Router       /app/admin/categorias/{id} [delete]
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.uc.DeleteCategory(c.UserContext(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Categoría eliminada"})
}

// ── Productos ──

// SaveProduct godoc
// @Summary      Crear o actualizar producto
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string              false  "ID (sólo al actualizar)"
// @Param        body  body      dto.ProductRequest  true   "Datos"
// @Success      200   {object}  dto.ProductCard
// @Success      201   {object}  dto.ProductCard
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /app/admin/productos [post]
// @Router       /app/admin/productos/{id} [put]
func (h *AdminHandler) SaveProduct(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id := c.Params("id")
	out, err := h.uc.SaveProduct(c.UserContext(), GetSession(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(savedStatus(id)).JSON(out)
}

// DeleteProduct godoc
// @Summary      Eliminar producto
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Router       /app/admin/productos/{id} [delete]
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(c.UserContext(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Producto eliminado"})
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Tags         admin
// @Produce      json
// @Param        threshold  query    int  false  "Umbral"  default(10)
// @Success      200        {array}  dto.ProductCard
// @Router       /app/admin/productos/stock-bajo [get]
func (h *AdminHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.UserContext(), GetSession(c), c.QueryInt("threshold", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func savedStatus(id string) int {
	if id == "" {
		return fiber.StatusCreated
	}
	return fiber.StatusOK
}
