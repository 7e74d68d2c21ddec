package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/usecase"
)

// ProfileHandler edición del perfil.
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Update godoc
// @Summary      Actualizar perfil
// @Description  El email no se puede cambiar.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ProfileUpdateRequest  true  "Nombre, teléfono y dirección"
// @Success      200   {object}  entity.User
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /app/perfil [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.ProfileUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	u, err := h.uc.Update(c.UserContext(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(u)
}
