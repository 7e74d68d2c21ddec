package dto

// CategoryRequest datos para crear o actualizar una categoría.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
