package entity

// Role rol de un usuario en el backend Firex.
type Role string

// Roles válidos para User.
const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User usuario tal como lo devuelve el backend (sin password). El email no cambia.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Role    Role   `json:"role"`
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
