package dto

// Envelope respuesta estándar del backend Firex: {success, message, data, timestamp}.
type Envelope[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
	Timestamp string `json:"timestamp,omitempty"`
}

// FieldError error de un campo de formulario.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP del BFF.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// MessageResponse respuesta simple para operaciones sin datos (eliminar, vaciar, logout).
type MessageResponse struct {
	Message string `json:"message"`
}
