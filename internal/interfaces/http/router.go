package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diedev/firex-web/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *usecase.AuthUseCase
	CatalogUC        *usecase.CatalogUseCase
	CartUC           *usecase.CartUseCase
	ServiceRequestUC *usecase.ServiceRequestUseCase
	ProfileUC        *usecase.ProfileUseCase
	AdminUC          *usecase.AdminUseCase
	Health           *HealthHandler
	Session          SessionConfig
}

// Router registra las rutas del BFF.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Health != nil {
		app.Get("/health", deps.Health.Health)
	}

	web := app.Group("/app", SessionMiddleware(deps.Session))

	// Sesión (pública)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)
	web.Get("/session", authHandler.Me)
	web.Post("/login", authHandler.Login)
	web.Post("/register", authHandler.Register)
	web.Post("/logout", authHandler.Logout)

	// Catálogo (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	web.Get("/home", catalogHandler.Home)
	web.Get("/productos", catalogHandler.List)
	web.Get("/productos/:id", catalogHandler.Detail)

	// Carrito (los casos de uso exigen sesión)
	cartHandler := NewCartHandler(deps.CartUC)
	cart := web.Group("/carrito")
	cart.Get("/", cartHandler.View)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.Add)
	cart.Put("/items/:productId", cartHandler.UpdateQuantity)
	cart.Delete("/items/:productId", cartHandler.Remove)

	// Solicitudes de servicio
	srHandler := NewServiceRequestHandler(deps.ServiceRequestUC)
	servicios := web.Group("/servicios")
	servicios.Get("/opciones", srHandler.Options)
	servicios.Post("/", srHandler.Submit)
	servicios.Get("/", srHandler.Mine)
	servicios.Get("/:requestId", srHandler.Detail)
	servicios.Get("/:requestId/comprobante", srHandler.Receipt)

	// Perfil
	profileHandler := NewProfileHandler(deps.ProfileUC)
	web.Put("/perfil", profileHandler.Update)

	// Administración (ADMIN)
	admin := web.Group("/admin", RequireAdmin())
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/dashboard", adminHandler.Dashboard)

	admin.Get("/solicitudes", adminHandler.Requests)
	admin.Get("/solicitudes/stats", adminHandler.RequestStats)
	admin.Put("/solicitudes/:id/estado", adminHandler.UpdateStatus)
	admin.Delete("/solicitudes/:id", adminHandler.DeleteRequest)

	admin.Get("/usuarios", adminHandler.Users)
	admin.Delete("/usuarios/:id", adminHandler.DeleteUser)

	admin.Get("/categorias", adminHandler.Categories)
	admin.Post("/categorias", adminHandler.SaveCategory)
	admin.Put("/categorias/:id", adminHandler.SaveCategory)
	admin.Delete("/categorias/:id", adminHandler.DeleteCategory)

	admin.Get("/productos/stock-bajo", adminHandler.LowStock)
	admin.Post("/productos", adminHandler.SaveProduct)
	admin.Put("/productos/:id", adminHandler.SaveProduct)
	admin.Delete("/productos/:id", adminHandler.DeleteProduct)
}
