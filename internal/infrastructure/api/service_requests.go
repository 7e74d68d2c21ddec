package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/domain/entity"
)

const serviceRequestsPath = "/api/service-requests"

// DefaultUpdatedBy valor de Updated-By cuando no se indica quién cambia el estado.
const DefaultUpdatedBy = "admin"

// ServiceRequestsAPI /api/service-requests. La identidad viaja en headers (User-Id, User-Email, Updated-By).
type ServiceRequestsAPI struct {
	c *Client
}

func (a *ServiceRequestsAPI) Create(ctx context.Context, userID, userEmail string, in dto.ServiceRequestCreate) (*dto.Envelope[entity.ServiceRequest], error) {
	return envelope[entity.ServiceRequest](ctx, a.c, request{
		method:  http.MethodPost,
		path:    serviceRequestsPath,
		body:    in,
		headers: map[string]string{"User-Id": userID, "User-Email": userEmail},
	})
}

func (a *ServiceRequestsAPI) GetAll(ctx context.Context) (*dto.Envelope[[]entity.ServiceRequest], error) {
	return envelope[[]entity.ServiceRequest](ctx, a.c, request{method: http.MethodGet, path: serviceRequestsPath})
}

func (a *ServiceRequestsAPI) GetByID(ctx context.Context, id string) (*dto.Envelope[entity.ServiceRequest], error) {
	return envelope[entity.ServiceRequest](ctx, a.c, request{method: http.MethodGet, path: serviceRequestsPath + "/" + url.PathEscape(id)})
}

// GetByRequestID busca por el código legible (SR-...).
func (a *ServiceRequestsAPI) GetByRequestID(ctx context.Context, requestID string) (*dto.Envelope[entity.ServiceRequest], error) {
	return envelope[entity.ServiceRequest](ctx, a.c, request{method: http.MethodGet, path: serviceRequestsPath + "/request/" + url.PathEscape(requestID)})
}

func (a *ServiceRequestsAPI) GetMine(ctx context.Context, email string) (*dto.Envelope[[]entity.ServiceRequest], error) {
	q := url.Values{"email": {email}}
	return envelope[[]entity.ServiceRequest](ctx, a.c, request{method: http.MethodGet, path: serviceRequestsPath + "/my-requests?" + q.Encode()})
}

func (a *ServiceRequestsAPI) GetByStatus(ctx context.Context, status string) (*dto.Envelope[[]entity.ServiceRequest], error) {
	return envelope[[]entity.ServiceRequest](ctx, a.c, request{method: http.MethodGet, path: serviceRequestsPath + "/status/" + url.PathEscape(status)})
}

// UpdateStatus updatedBy vacío envía DefaultUpdatedBy.
func (a *ServiceRequestsAPI) UpdateStatus(ctx context.Context, id, status, updatedBy string) (*dto.Envelope[entity.ServiceRequest], error) {
	if updatedBy == "" {
		updatedBy = DefaultUpdatedBy
	}
	return envelope[entity.ServiceRequest](ctx, a.c, request{
		method:  http.MethodPut,
		path:    serviceRequestsPath + "/" + url.PathEscape(id) + "/status",
		body:    dto.UpdateStatusRequest{Status: status},
		headers: map[string]string{"Updated-By": updatedBy},
	})
}

func (a *ServiceRequestsAPI) Delete(ctx context.Context, id string) (*dto.Envelope[any], error) {
	return envelope[any](ctx, a.c, request{method: http.MethodDelete, path: serviceRequestsPath + "/" + url.PathEscape(id)})
}

// Stats conteo por estado.
func (a *ServiceRequestsAPI) Stats(ctx context.Context) (*dto.Envelope[dto.RequestStats], error) {
	return envelope[dto.RequestStats](ctx, a.c, request{method: http.MethodGet, path: serviceRequestsPath + "/stats"})
}
