package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/insumos-api/internal/application/alerts"
	"github.com/tu-usuario/insumos-api/internal/application/auth"
	"github.com/tu-usuario/insumos-api/internal/application/inventory"
	"github.com/tu-usuario/insumos-api/internal/application/orders"
	"github.com/tu-usuario/insumos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC       *usecase.CategoryUseCase
	SupplyUC         *usecase.SupplyUseCase
	SupplierUC       *usecase.SupplierUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	MovementTypeUC   *usecase.MovementTypeUseCase
	MovementReasonUC *usecase.MovementReasonUseCase
	MovementUC       *inventory.MovementUseCase
	MovementDetailUC *inventory.DetailUseCase
	StockUC          *inventory.StockUseCase
	AlertUC          *alerts.AlertUseCase
	OrderUC          *orders.OrderUseCase
	OrderDetailUC    *orders.DetailUseCase
	InvoiceUC        *usecase.InvoiceUseCase
	InvoicePDFUC     *usecase.InvoicePDFUseCase
	UserUC           *usecase.UserUseCase
	RoleUC           *usecase.RoleUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Categorías
	categories := protected.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Insumos
	supplies := protected.Group("/insumos")
	supplyHandler := NewSupplyHandler(deps.SupplyUC)
	supplies.Post("/", supplyHandler.Create)
	supplies.Get("/", supplyHandler.List)
	supplies.Get("/stock_critico", supplyHandler.ListCriticalStock)
	supplies.Get("/:id", supplyHandler.GetByID)
	supplies.Put("/:id", supplyHandler.Update)
	supplies.Delete("/:id", supplyHandler.Delete)

	// Proveedores
	suppliers := protected.Group("/proveedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Depósitos
	warehouses := protected.Group("/depositos")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Tipos de movimiento
	types := protected.Group("/tipos-movimiento")
	typeHandler := NewMovementTypeHandler(deps.MovementTypeUC)
	types.Post("/", typeHandler.Create)
	types.Get("/", typeHandler.List)
	types.Get("/:id", typeHandler.GetByID)
	types.Put("/:id", typeHandler.Update)
	types.Delete("/:id", typeHandler.Delete)

	// Razones de movimiento
	reasons := protected.Group("/razones-movimiento")
	reasonHandler := NewMovementReasonHandler(deps.MovementReasonUC)
	reasons.Post("/", reasonHandler.Create)
	reasons.Get("/", reasonHandler.List)
	reasons.Get("/:id", reasonHandler.GetByID)
	reasons.Put("/:id", reasonHandler.Update)
	reasons.Delete("/:id", reasonHandler.Delete)

	// Movimientos de inventario
	movements := protected.Group("/movimientos-inventario")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Detalles de movimiento
	movementDetails := protected.Group("/detalles-movimiento")
	movementDetailHandler := NewMovementDetailHandler(deps.MovementDetailUC)
	movementDetails.Post("/", movementDetailHandler.Create)
	movementDetails.Get("/", movementDetailHandler.ListByMovement)
	movementDetails.Get("/:id", movementDetailHandler.GetByID)
	movementDetails.Put("/:id", movementDetailHandler.Update)
	movementDetails.Delete("/:id", movementDetailHandler.Delete)

	// Stock por depósito
	stock := protected.Group("/stock-depositos")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Post("/", stockHandler.Create)
	stock.Get("/", stockHandler.List)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Put("/:id", stockHandler.Update)
	stock.Delete("/:id", stockHandler.Delete)

	// Alertas de stock
	alertsGroup := protected.Group("/alertas-stock")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alertsGroup.Post("/", alertHandler.Create)
	alertsGroup.Get("/", alertHandler.List)
	alertsGroup.Get("/:id", alertHandler.GetByID)
	alertsGroup.Put("/:id", alertHandler.Update)
	alertsGroup.Delete("/:id", alertHandler.Delete)

	// Órdenes de compra
	ordersGroup := protected.Group("/ordenes-compra")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.Update)
	ordersGroup.Delete("/:id", orderHandler.Delete)

	// Detalles de orden de compra
	orderDetails := protected.Group("/detalles-orden-compra")
	orderDetailHandler := NewOrderDetailHandler(deps.OrderDetailUC)
	orderDetails.Post("/", orderDetailHandler.Create)
	orderDetails.Get("/", orderDetailHandler.ListByOrder)
	orderDetails.Get("/:id", orderDetailHandler.GetByID)
	orderDetails.Put("/:id", orderDetailHandler.Update)
	orderDetails.Delete("/:id", orderDetailHandler.Delete)

	// Facturas de proveedor
	invoices := protected.Group("/facturas")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Usuarios
	users := protected.Group("/usuarios")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Roles
	roles := protected.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Delete("/:id", roleHandler.Delete)
}
