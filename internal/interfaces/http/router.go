package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/dulceria-lilis/internal/application/analytics"
	"github.com/jhoicas/dulceria-lilis/internal/application/auth"
	"github.com/jhoicas/dulceria-lilis/internal/application/export"
	"github.com/jhoicas/dulceria-lilis/internal/application/inventory"
	"github.com/jhoicas/dulceria-lilis/internal/application/usecase"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *usecase.ProductUseCase
	SupplierUC       *usecase.SupplierUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	LotUC            *usecase.LotUseCase
	UserUC           *usecase.UserUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Movements        *inventory.MovementUseCase
	Replenishment    *inventory.ReplenishmentUseCase
	Dashboard        *analytics.DashboardUseCase
	Documents        DocumentGenerator
	Exporter         export.TableWriter
	Sessions         *session.Store
	JWTSecret        string
	Log              *logger.Logger
}

// Router registra las páginas HTML, los endpoints AJAX y la API JSON.
func Router(app *fiber.App, deps RouterDeps) {
	pages := NewPages(deps.Sessions, deps.Exporter, deps.Log)
	authHandler := NewAuthHandler(deps.AuthUC, pages)

	// API JSON (Bearer JWT)
	api := app.Group("/api")
	api.Post("/auth/login", authHandler.APILogin)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	productAPI := NewProductAPIHandler(deps.ProductUC)
	protected.Get("/productos", RequirePermission(entity.PermViewProducts), productAPI.List)
	protected.Post("/productos", RequirePermission(entity.PermAddProducts), productAPI.Create)
	protected.Get("/productos/:id", RequirePermission(entity.PermViewProducts), productAPI.GetByID)
	protected.Put("/productos/:id", RequirePermission(entity.PermChangeProducts), productAPI.Update)
	protected.Delete("/productos/:id", RequirePermission(entity.PermDeleteProducts), productAPI.Delete)

	inventoryHandler := NewInventoryHandler(InventoryDeps{
		Register:      deps.RegisterMovement,
		Movements:     deps.Movements,
		Replenishment: deps.Replenishment,
		Products:      deps.ProductUC,
		Suppliers:     deps.SupplierUC,
		Warehouses:    deps.WarehouseUC,
		Lots:          deps.LotUC,
		Docs:          deps.Documents,
	}, pages)
	protected.Get("/inventario/reposicion", RequirePermission(entity.PermViewProducts), inventoryHandler.GetReplenishmentList)

	analyticsAPI := NewAnalyticsHandler(deps.Dashboard)
	protected.Get("/inventario/resumen", RequirePermission(entity.PermViewMovements), analyticsAPI.GetSummary)

	// Páginas públicas
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.LoginSubmit)
	app.Get("/password/reset", authHandler.ResetRequestPage)
	app.Post("/password/reset", authHandler.ResetRequestSubmit)
	app.Get("/password/reset/:token", authHandler.ResetConfirmPage)
	app.Post("/password/reset/:token", authHandler.ResetConfirmSubmit)

	// Páginas con sesión
	web := app.Group("/", SessionAuth(deps.Sessions))
	web.Post("/logout", authHandler.Logout)

	dashboard := NewDashboardHandler(deps.Dashboard, deps.Replenishment, deps.Documents, pages)
	web.Get("/", dashboard.Home)
	web.Get("/reposicion.pdf", RequirePermission(entity.PermViewProducts), dashboard.ReplenishmentPDF)

	products := NewProductHandler(deps.ProductUC, deps.Movements, pages)
	web.Get("/productos", RequirePermission(entity.PermViewProducts), products.List)
	web.Post("/productos", RequirePermission(entity.PermAddProducts), products.Create)
	web.Get("/productos/:id", RequirePermission(entity.PermViewProducts), products.Detail)
	web.Get("/productos/:id/editar", RequirePermission(entity.PermChangeProducts), products.EditPage)
	web.Post("/productos/:id/editar", RequirePermission(entity.PermChangeProducts), products.Update)
	web.Post("/productos/:id/eliminar", RequirePermission(entity.PermDeleteProducts), products.Delete)

	suppliers := NewSupplierHandler(deps.SupplierUC, deps.ProductUC, pages)
	web.Get("/proveedores", RequirePermission(entity.PermViewSuppliers), suppliers.List)
	web.Post("/proveedores", RequirePermission(entity.PermAddSuppliers), suppliers.Create)
	web.Get("/proveedores/:id", RequirePermission(entity.PermViewSuppliers), suppliers.Detail)
	web.Get("/proveedores/:id/editar", RequirePermission(entity.PermChangeSuppliers), suppliers.EditPage)
	web.Post("/proveedores/:id/editar", RequirePermission(entity.PermChangeSuppliers), suppliers.Update)
	web.Post("/proveedores/:id/eliminar", RequirePermission(entity.PermDeleteSuppliers), suppliers.Delete)
	web.Post("/proveedores/:id/productos", RequirePermission(entity.PermChangeSuppliers), suppliers.AddProduct)
	web.Post("/proveedores/:id/productos/:linkID/eliminar", RequirePermission(entity.PermChangeSuppliers), suppliers.RemoveProduct)

	inv := web.Group("/inventario")
	inv.Get("/movimientos", RequirePermission(entity.PermViewMovements), inventoryHandler.ListMovements)
	inv.Get("/movimientos/nuevo", RequirePermission(entity.PermAddMovements), inventoryHandler.NewMovementPage)
	inv.Post("/movimientos/nuevo", RequirePermission(entity.PermAddMovements), inventoryHandler.CreateMovement)
	inv.Get("/movimientos/:id", RequirePermission(entity.PermViewMovements), inventoryHandler.MovementDetail)
	inv.Get("/movimientos/:id/editar", RequirePermission(entity.PermChangeMovements), inventoryHandler.EditMovementPage)
	inv.Post("/movimientos/:id/editar", RequirePermission(entity.PermChangeMovements), inventoryHandler.UpdateMovement)
	inv.Get("/movimientos/:id/comprobante", RequirePermission(entity.PermViewMovements), inventoryHandler.MovementPDF)
	inv.Get("/ajax/proveedores/:id/productos", RequirePermission(entity.PermAddMovements), inventoryHandler.SupplierProducts)
	inv.Get("/ajax/productos/:id/lotes", RequirePermission(entity.PermAddMovements), inventoryHandler.ProductLots)

	warehouses := NewWarehouseHandler(deps.WarehouseUC, pages)
	inv.Get("/bodegas", RequirePermission(entity.PermViewWarehouses), warehouses.List)
	inv.Post("/bodegas", RequirePermission(entity.PermManageWarehouses), warehouses.Create)
	inv.Get("/bodegas/:id/editar", RequirePermission(entity.PermManageWarehouses), warehouses.EditPage)
	inv.Post("/bodegas/:id/editar", RequirePermission(entity.PermManageWarehouses), warehouses.Update)
	inv.Post("/bodegas/:id/eliminar", RequirePermission(entity.PermManageWarehouses), warehouses.Delete)

	lots := NewLotHandler(deps.LotUC, deps.ProductUC, pages)
	inv.Get("/lotes", RequirePermission(entity.PermViewWarehouses), lots.List)
	inv.Post("/lotes", RequirePermission(entity.PermManageWarehouses), lots.Create)
	inv.Get("/lotes/:id/editar", RequirePermission(entity.PermManageWarehouses), lots.EditPage)
	inv.Post("/lotes/:id/editar", RequirePermission(entity.PermManageWarehouses), lots.Update)
	inv.Post("/lotes/:id/eliminar", RequirePermission(entity.PermManageWarehouses), lots.Delete)

	users := NewUserHandler(deps.UserUC, pages)
	// Perfil propio: basta con la sesión.
	web.Get("/perfil", users.ProfilePage)
	web.Post("/perfil", users.ProfileUpdate)

	usr := web.Group("/usuarios", RequirePermission(entity.PermManageUsers))
	usr.Get("/", users.List)
	usr.Post("/", users.Create)
	usr.Get("/:id/editar", users.EditPage)
	usr.Post("/:id/editar", users.Update)
	usr.Post("/:id/eliminar", users.Delete)
}
