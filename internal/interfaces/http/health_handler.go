package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/diedev/firex-web/internal/application/ports"
)

// DefaultHealthTimeout límite de la consulta al backend en /health.
const DefaultHealthTimeout = 2 * time.Second

// HealthHandler liveness del BFF y disponibilidad del backend.
type HealthHandler struct {
	service string
	backend ports.HealthAPI
	timeout time.Duration
}

// NewHealthHandler construye el handler. backend puede ser nil; timeout 0 usa DefaultHealthTimeout.
func NewHealthHandler(service string, backend ports.HealthAPI, timeout time.Duration) *HealthHandler {
	if timeout <= 0 {
		timeout = DefaultHealthTimeout
	}
	return &HealthHandler{service: service, backend: backend, timeout: timeout}
}

// Health godoc
// @Summary      Estado del servicio
// @Description  Siempre 200 mientras el BFF responda; backend indica si la API de Firex está disponible.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	out := fiber.Map{"status": "ok", "service": h.service}
	if h.backend == nil {
		return c.JSON(out)
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()
	if st, err := h.backend.Check(ctx); err != nil {
		out["backend"] = "DOWN"
	} else {
		out["backend"] = st.Status
	}
	return c.JSON(out)
}
