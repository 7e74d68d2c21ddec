package dto

// DashboardStats tarjetas del panel de administración.
type DashboardStats struct {
	TotalProducts   int `json:"totalProducts"`
	LowStock        int `json:"lowStock"`
	PendingRequests int `json:"pendingRequests"`
	TotalUsers      int `json:"totalUsers"`
}

// HealthStatus respuesta de /api/health del backend (no viene en Envelope).
type HealthStatus struct {
	Service string `json:"service"`
	Status  string `json:"status"` // UP
	Version string `json:"version,omitempty"`
}

// RequestStats conteo de solicitudes por estado (/api/service-requests/stats).
type RequestStats map[string]int64
