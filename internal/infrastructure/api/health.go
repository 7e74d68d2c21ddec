package api

import (
	"context"
	"net/http"

	"github.com/diedev/firex-web/internal/application/dto"
)

// HealthAPI /api/health.
type HealthAPI struct {
	c *Client
}

// Check consulta /api/health; un error indica que el backend no está disponible.
func (a *HealthAPI) Check(ctx context.Context) (*dto.HealthStatus, error) {
	out, err := call[dto.HealthStatus](ctx, a.c, request{method: http.MethodGet, path: "/api/health"})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
