package entity

import "strings"

// ServiceRequestStatus estado del flujo de recarga. El orden de declaración es el orden del flujo.
type ServiceRequestStatus string

const (
	StatusPendiente  ServiceRequestStatus = "PENDIENTE"
	StatusRecogido   ServiceRequestStatus = "RECOGIDO"
	StatusEnRecarga  ServiceRequestStatus = "EN_RECARGA"
	StatusListo      ServiceRequestStatus = "LISTO"
	StatusEntregado  ServiceRequestStatus = "ENTREGADO"
	StatusFinalizado ServiceRequestStatus = "FINALIZADO"
)

// StatusFlow PENDIENTE -> RECOGIDO -> EN_RECARGA -> LISTO -> ENTREGADO -> FINALIZADO.
var StatusFlow = []ServiceRequestStatus{
	StatusPendiente,
	StatusRecogido,
	StatusEnRecarga,
	StatusListo,
	StatusEntregado,
	StatusFinalizado,
}

var statusLabels = map[ServiceRequestStatus]string{
	StatusPendiente:  "Pendiente",
	StatusRecogido:   "Recogido",
	StatusEnRecarga:  "En Recarga",
	StatusListo:      "Listo",
	StatusEntregado:  "Entregado",
	StatusFinalizado: "Finalizado",
}

// ParseStatus normaliza a mayúsculas y valida contra el flujo.
func ParseStatus(s string) (ServiceRequestStatus, bool) {
	st := ServiceRequestStatus(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.Index() >= 0
}

// Index posición en StatusFlow, -1 si no pertenece.
func (s ServiceRequestStatus) Index() int {
	for i, st := range StatusFlow {
		if st == s {
			return i
		}
	}
	return -1
}

// Label etiqueta para el badge; si el estado es desconocido devuelve el valor crudo.
func (s ServiceRequestStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// CanTransitionTo replica la regla del backend: desde PENDIENTE se puede ir a cualquier estado,
// FINALIZADO no cambia y no se retrocede más de un paso.
func (s ServiceRequestStatus) CanTransitionTo(next ServiceRequestStatus) bool {
	if next.Index() < 0 {
		return false
	}
	switch s {
	case StatusPendiente:
		return true
	case StatusFinalizado:
		return false
	}
	return next.Index() >= s.Index()-1
}

// Tipos de extintor, estados del extintor y franjas horarias aceptados por el backend.
var (
	ExtinguisherTypes  = []string{"ABC", "CO2", "H2O", "K"}
	ExtinguisherStates = []string{"Operativo", "Descargado", "Vencido"}
	TimeSlots          = []string{"Mañana", "Tarde"}
)

// TimelineEntry entrada del historial de estados; la produce el backend y es de sólo lectura.
type TimelineEntry struct {
	Status    ServiceRequestStatus `json:"status"`
	Timestamp Timestamp            `json:"timestamp"`
	By        string               `json:"by"`
}

// ServiceRequest solicitud de recarga/mantenimiento de extintor.
type ServiceRequest struct {
	ID             string               `json:"id"`
	RequestID      string               `json:"requestId"` // ej. SR-1234567890
	UserID         string               `json:"userId"`
	UserEmail      string               `json:"userEmail"`
	Tipo           string               `json:"tipo"`
	EstadoExtintor string               `json:"estadoExtintor"`
	Fecha          string               `json:"fecha"` // YYYY-MM-DD
	Franja         string               `json:"franja"`
	Direccion      string               `json:"direccion"`
	Telefono       string               `json:"telefono"`
	Observaciones  string               `json:"observaciones,omitempty"`
	Status         ServiceRequestStatus `json:"status"`
	Timeline       []TimelineEntry      `json:"timeline"`
	CreatedAt      Timestamp            `json:"createdAt"`
	UpdatedAt      Timestamp            `json:"updatedAt"`
}
