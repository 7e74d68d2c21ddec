package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/usecase"
)

// AuthHandler login, registro y sesión.
type AuthHandler struct {
	uc       *usecase.AuthUseCase
	sessions SessionConfig
}

// NewAuthHandler construye el handler. Login y logout emiten un sid nuevo con la config de sesiones.
func NewAuthHandler(uc *usecase.AuthUseCase, sessions SessionConfig) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions.withDefaults()}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.SessionView
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /app/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	next := newSession(c, h.sessions)
	if _, err := h.uc.Login(c.UserContext(), next.holder, in); err != nil {
		_ = next.holder.Logout(c.UserContext())
		return respondError(c, err)
	}
	if err := next.commit(c, h.sessions); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.uc.Me(next.holder))
}

// Register godoc
// @Summary      Crear cuenta
// @Description  No inicia sesión; el usuario debe hacer login después.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "Datos de registro"
// @Success      201   {object}  entity.User
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /app/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	u, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(u)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /app/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetSession(c)); err != nil {
		return respondError(c, err)
	}
	if err := newSession(c, h.sessions).commit(c, h.sessions); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Sesión cerrada"})
}

// Me godoc
// @Summary      Estado de la sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionView
// @Router       /app/session [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(h.uc.Me(GetSession(c)))
}
