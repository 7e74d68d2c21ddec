package dto

import (
	"time"

	"github.com/diedev/firex-web/internal/domain/entity"
)

// RegisterRequest formulario de registro (también lo usa el backend para actualizar perfil).
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// LoginRequest credenciales de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse respuesta de /api/users/login: NO viene dentro de data.
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *entity.User `json:"user"`
	Token   string       `json:"token,omitempty"`
	// Algunos despliegues anidan el token en data.
	Data *struct {
		Token string `json:"token"`
	} `json:"data,omitempty"`
}

// ProfileUpdateRequest campos editables del perfil.
type ProfileUpdateRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// SessionView estado de sesión expuesto al navegador.
type SessionView struct {
	State           string       `json:"state"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsAdmin         bool         `json:"isAdmin"`
	User            *entity.User `json:"user,omitempty"`
	TokenExpiresAt  *time.Time   `json:"tokenExpiresAt,omitempty"`
}

// UsersView listado de usuarios del panel admin con filtro de búsqueda.
type UsersView struct {
	Users  []entity.User `json:"users"`
	Total  int           `json:"total"`
	Search string        `json:"search,omitempty"`
}
