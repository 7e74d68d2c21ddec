package ports

import (
	"context"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/domain/entity"
)

// Puertos de salida hacia el backend REST de Firex. Los casos de uso sólo conocen
// estos contratos; el adaptador HTTP vive en infrastructure/api.

// ProductsAPI catálogo de productos.
type ProductsAPI interface {
	GetAll(ctx context.Context) (*dto.Envelope[[]entity.Product], error)
	GetByID(ctx context.Context, id string) (*dto.Envelope[entity.Product], error)
	Create(ctx context.Context, in dto.ProductRequest) (*dto.Envelope[entity.Product], error)
	Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.Envelope[entity.Product], error)
	Delete(ctx context.Context, id string) (*dto.Envelope[any], error)
	Search(ctx context.Context, keyword string) (*dto.Envelope[[]entity.Product], error)
	ByCategory(ctx context.Context, categoryID string) (*dto.Envelope[[]entity.Product], error)
	Available(ctx context.Context) (*dto.Envelope[[]entity.Product], error)
	LowStock(ctx context.Context, threshold int) (*dto.Envelope[[]entity.Product], error)
}

// CategoriesAPI categorías de producto.
type CategoriesAPI interface {
	GetAll(ctx context.Context) (*dto.Envelope[[]entity.Category], error)
	GetByID(ctx context.Context, id string) (*dto.Envelope[entity.Category], error)
	Create(ctx context.Context, in dto.CategoryRequest) (*dto.Envelope[entity.Category], error)
	Update(ctx context.Context, id string, in dto.CategoryRequest) (*dto.Envelope[entity.Category], error)
	Delete(ctx context.Context, id string) (*dto.Envelope[any], error)
}

// CartAPI carrito de un usuario.
type CartAPI interface {
	Get(ctx context.Context, userID string) (*dto.Envelope[entity.Cart], error)
	AddItem(ctx context.Context, userID, productID string, quantity int) (*dto.Envelope[entity.Cart], error)
	UpdateItem(ctx context.Context, userID, productID string, quantity int) (*dto.Envelope[entity.Cart], error)
	RemoveItem(ctx context.Context, userID, productID string) (*dto.Envelope[entity.Cart], error)
	Clear(ctx context.Context, userID string) (*dto.Envelope[entity.Cart], error)
}

// AuthAPI registro y login.
type AuthAPI interface {
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.Envelope[entity.User], error)
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
}

// UsersAPI administración de usuarios y perfil.
type UsersAPI interface {
	GetAll(ctx context.Context) (*dto.Envelope[[]entity.User], error)
	GetByID(ctx context.Context, id string) (*dto.Envelope[entity.User], error)
	UpdateProfile(ctx context.Context, id string, in dto.ProfileUpdateRequest) (*dto.Envelope[entity.User], error)
	Delete(ctx context.Context, id string) (*dto.Envelope[any], error)
}

// ServiceRequestsAPI solicitudes de recarga y mantenimiento.
type ServiceRequestsAPI interface {
	Create(ctx context.Context, userID, userEmail string, in dto.ServiceRequestCreate) (*dto.Envelope[entity.ServiceRequest], error)
	GetAll(ctx context.Context) (*dto.Envelope[[]entity.ServiceRequest], error)
	GetByID(ctx context.Context, id string) (*dto.Envelope[entity.ServiceRequest], error)
	GetByRequestID(ctx context.Context, requestID string) (*dto.Envelope[entity.ServiceRequest], error)
	GetMine(ctx context.Context, email string) (*dto.Envelope[[]entity.ServiceRequest], error)
	GetByStatus(ctx context.Context, status string) (*dto.Envelope[[]entity.ServiceRequest], error)
	UpdateStatus(ctx context.Context, id, status, updatedBy string) (*dto.Envelope[entity.ServiceRequest], error)
	Delete(ctx context.Context, id string) (*dto.Envelope[any], error)
	Stats(ctx context.Context) (*dto.Envelope[dto.RequestStats], error)
}

// HealthAPI disponibilidad del backend.
type HealthAPI interface {
	Check(ctx context.Context) (*dto.HealthStatus, error)
}

// ReceiptRenderer genera el comprobante PDF de una solicitud.
type ReceiptRenderer interface {
	ServiceRequestReceipt(sr *entity.ServiceRequest) ([]byte, error)
}
