package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthenticated   = errors.New("debes iniciar sesión")
	ErrForbidden         = errors.New("no tienes permisos para acceder a esta página")
	ErrOutOfStock        = errors.New("producto sin stock")
	ErrInvalidTransition = errors.New("transición de estado inválida")
)
