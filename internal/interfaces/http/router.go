package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/trazametal-api/internal/application/auth"
	appcart "github.com/jcastro/trazametal-api/internal/application/cart"
	applabel "github.com/jcastro/trazametal-api/internal/application/label"
	"github.com/jcastro/trazametal-api/internal/application/orders"
	"github.com/jcastro/trazametal-api/internal/application/tracking"
	"github.com/jcastro/trazametal-api/internal/application/usecase"
	"github.com/jcastro/trazametal-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ControlPointUC *usecase.ControlPointUseCase
	ElementUC      *usecase.ElementUseCase
	LabelUC        *applabel.LabelUseCase
	RecordMovement *tracking.RecordMovementUseCase
	HistoryUC      *tracking.HistoryUseCase
	ProductUC      *usecase.ProductUseCase
	CartUC         *appcart.CartUseCase
	OrderUC        *orders.OrderUseCase
	FactoryUC      *usecase.FactoryUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. El acceso por rol sigue la matriz:
// el administrador lo puede todo; los operadores de planta/almacén/obra
// registran movimientos; los clientes manejan carrito y órdenes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Control points (lectura para todos los autenticados, alta solo admin)
	points := protected.Group("/control-points")
	pointHandler := NewControlPointHandler(deps.ControlPointUC)
	points.Post("/", RequireRole(entity.RoleAdministrator), pointHandler.Create)
	points.Get("/", pointHandler.List)
	points.Get("/:id", pointHandler.GetByID)

	// Elements (marcado en planta, consultas, override de estado, etiqueta)
	elements := protected.Group("/elements")
	elementHandler := NewElementHandler(deps.ElementUC, deps.LabelUC)
	elements.Post("/",
		RequireRole(entity.RoleAdministrator, entity.RoleFactoryOp),
		elementHandler.Create)
	elements.Get("/", elementHandler.List)
	elements.Get("/code/:code", elementHandler.GetByCode)
	elements.Get("/:id", elementHandler.GetByID)
	elements.Get("/:id/label", elementHandler.Label)
	elements.Patch("/:id/status",
		RequireRole(entity.RoleAdministrator, entity.RoleFactoryOp, entity.RoleWarehouseKeeper, entity.RoleSiteMaster),
		elementHandler.SetStatus)

	// Movements (registro restringido a operadores, historia para todos)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RecordMovement, deps.HistoryUC)
	movements.Post("/",
		RequireRole(entity.RoleAdministrator, entity.RoleFactoryOp, entity.RoleWarehouseKeeper, entity.RoleSiteMaster),
		movementHandler.Record)
	movements.Get("/element/:elementId", movementHandler.HistoryByElement)

	// Products (catálogo: escritura solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole(entity.RoleAdministrator), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireRole(entity.RoleAdministrator), productHandler.Update)

	// Cart (clientes)
	cart := protected.Group("/cart", RequireRole(entity.RoleCustomerOp, entity.RoleAdministrator))
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.Get)
	cart.Post("/items", cartHandler.AddItem)
	cart.Delete("/items/:id", cartHandler.RemoveItem)

	// Orders (checkout de clientes, asignación solo admin)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/checkout",
		RequireRole(entity.RoleCustomerOp, entity.RoleAdministrator),
		orderHandler.Checkout)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id/status",
		RequireRole(entity.RoleAdministrator, entity.RoleCustomerOp, entity.RoleFactoryOp),
		orderHandler.SetStatus)
	ordersGroup.Patch("/:id/assign",
		RequireRole(entity.RoleAdministrator),
		orderHandler.AssignFactory)

	// Factories (alta solo admin)
	factories := protected.Group("/factories")
	factoryHandler := NewFactoryHandler(deps.FactoryUC)
	factories.Post("/", RequireRole(entity.RoleAdministrator), factoryHandler.Create)
	factories.Get("/", factoryHandler.List)
	factories.Get("/:id", factoryHandler.GetByID)
}
