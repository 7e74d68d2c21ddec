package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/session"
	"github.com/diedev/firex-web/internal/infrastructure/api"
	"github.com/diedev/firex-web/pkg/jwt"
	"github.com/diedev/firex-web/pkg/logger"
)

// Locals keys.
const (
	LocalSession   = "session"
	LocalSessionID = "session_id"
)

// SessionConfig configuración de la cookie de sesión del navegador.
type SessionConfig struct {
	Manager    *session.Manager
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
	Issuer     string
	Log        *logger.Logger
}

// SessionMiddleware resuelve la sesión del navegador.
//
// La cookie es un JWT HS256 que sólo lleva el id de sesión (uuid). Si falta o no es válida
// se emite una nueva. El holder restaurado queda en c.Locals y el token del backend
// viaja en el UserContext para el cliente API.
func SessionMiddleware(cfg SessionConfig) fiber.Handler {
	cfg = cfg.withDefaults()
	log := cfg.Log.Component("http")

	return func(c *fiber.Ctx) error {
		sid, err := jwt.Parse(cfg.Secret, c.Cookies(cfg.CookieName))
		if err != nil {
			sid = uuid.NewString()
			if err := issueCookie(c, cfg, sid); err != nil {
				log.Error().Err(err).Msg("firmar cookie de sesión")
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: "no se pudo iniciar la sesión"})
			}
		}
		bindSession(c, sid, cfg.Manager.Open(c.UserContext(), sid))
		return c.Next()
	}
}

func (cfg SessionConfig) withDefaults() SessionConfig {
	if cfg.CookieName == "" {
		cfg.CookieName = "firex_sid"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 7 * 24 * time.Hour
	}
	if cfg.Log == nil {
		cfg.Log = logger.Nop()
	}
	return cfg
}

// issueCookie firma sid y lo envía como cookie de sesión.
func issueCookie(c *fiber.Ctx, cfg SessionConfig, sid string) error {
	signed, err := jwt.Generate(cfg.Secret, sid, cfg.Issuer, cfg.TTL)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  time.Now().Add(cfg.TTL),
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

func bindSession(c *fiber.Ctx, sid string, h *session.Holder) {
	c.Locals(LocalSessionID, sid)
	c.Locals(LocalSession, h)
	c.SetUserContext(api.WithToken(c.UserContext(), h.Token()))
}

// pendingSession holder sobre un sid nuevo que todavía no tiene cookie.
type pendingSession struct {
	sid    string
	holder *session.Holder
}

// newSession abre una sesión vacía con un sid recién generado (login, logout).
func newSession(c *fiber.Ctx, cfg SessionConfig) pendingSession {
	sid := uuid.NewString()
	return pendingSession{sid: sid, holder: cfg.Manager.Open(c.UserContext(), sid)}
}

// commit descarta la sesión anterior, envía la cookie del sid nuevo y la deja activa en la petición.
func (p pendingSession) commit(c *fiber.Ctx, cfg SessionConfig) error {
	if old := GetSession(c); old != nil {
		if err := old.Logout(c.UserContext()); err != nil {
			cfg.Log.Warn().Err(err).Msg("limpiar sesión anterior")
		}
	}
	if err := issueCookie(c, cfg, p.sid); err != nil {
		return err
	}
	bindSession(c, p.sid, p.holder)
	return nil
}

// GetSession devuelve el holder de la petición (después de SessionMiddleware).
func GetSession(c *fiber.Ctx) *session.Holder {
	h, _ := c.Locals(LocalSession).(*session.Holder)
	return h
}

// RequireAdmin responde 401/403 antes del handler. Los casos de uso también verifican el rol.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := GetSession(c)
		if h == nil || !h.IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthenticated, Message: "debes iniciar sesión"})
		}
		if !h.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: CodeForbidden, Message: "no tienes permisos para acceder a esta página"})
		}
		return c.Next()
	}
}
