package dto

import "github.com/diedev/firex-web/internal/domain/entity"

// ServiceRequestCreate formulario de solicitud de servicio.
type ServiceRequestCreate struct {
	Tipo           string `json:"tipo"`
	EstadoExtintor string `json:"estadoExtintor"`
	Fecha          string `json:"fecha"` // YYYY-MM-DD
	Franja         string `json:"franja"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	Observaciones  string `json:"observaciones,omitempty"`
}

// UpdateStatusRequest cuerpo de PUT /api/service-requests/{id}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ServiceRequestView solicitud con etiqueta de estado y teléfono formateado.
type ServiceRequestView struct {
	entity.ServiceRequest
	StatusLabel   string `json:"statusLabel"`
	TelefonoLabel string `json:"telefonoLabel"`
}

// StatusCount cantidad de solicitudes por estado (selector del panel admin).
type StatusCount struct {
	Status entity.ServiceRequestStatus `json:"status"`
	Label  string                      `json:"label"`
	Count  int                         `json:"count"`
}

// RequestsQuery filtros del panel de solicitudes.
type RequestsQuery struct {
	Status string `query:"status"` // ALL o un estado
	Search string `query:"search"`
}

// RequestsView panel de solicitudes: más recientes primero.
type RequestsView struct {
	Requests []ServiceRequestView `json:"requests"`
	Counts   []StatusCount        `json:"counts"`
	Total    int                  `json:"total"`
	Query    RequestsQuery        `json:"query"`
}

// ServiceRequestOptions valores de los selectores del formulario de solicitud.
type ServiceRequestOptions struct {
	Tipos           []string      `json:"tipos"`
	EstadosExtintor []string      `json:"estadosExtintor"`
	Franjas         []string      `json:"franjas"`
	Statuses        []StatusCount `json:"statuses"`
}
