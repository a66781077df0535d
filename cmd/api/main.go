package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/insumos-api/internal/application/alerts"
	"github.com/tu-usuario/insumos-api/internal/application/auth"
	"github.com/tu-usuario/insumos-api/internal/application/inventory"
	"github.com/tu-usuario/insumos-api/internal/application/orders"
	"github.com/tu-usuario/insumos-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/insumos-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/insumos-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/insumos-api/internal/interfaces/http"
	"github.com/tu-usuario/insumos-api/pkg/config"
	"github.com/tu-usuario/insumos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	supplyRepo := postgres.NewSupplyRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	typeRepo := postgres.NewMovementTypeRepository(pool)
	reasonRepo := postgres.NewMovementReasonRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	movementDetailRepo := postgres.NewMovementDetailRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	orderDetailRepo := postgres.NewOrderDetailRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplyUC := usecase.NewSupplyUseCase(supplyRepo, categoryRepo, supplierRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	typeUC := usecase.NewMovementTypeUseCase(typeRepo)
	reasonUC := usecase.NewMovementReasonUseCase(reasonRepo, typeRepo)
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo, movementDetailRepo)
	movementDetailUC := inventory.NewDetailUseCase(txRunner, movementRepo, movementDetailRepo, supplyRepo)
	stockUC := inventory.NewStockUseCase(txRunner, stockRepo)
	alertUC := alerts.NewAlertUseCase(alertRepo)
	orderUC := orders.NewOrderUseCase(txRunner, orderRepo, orderDetailRepo)
	orderDetailUC := orders.NewDetailUseCase(txRunner, orderDetailRepo)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, supplierRepo, orderRepo)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo)

	// PDF: comprobante imprimible de la factura de proveedor
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := usecase.NewInvoicePDFUseCase(
		invoiceRepo, supplierRepo, orderDetailRepo, supplyRepo, pdfGenerator,
	)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Insumos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:       categoryUC,
		SupplyUC:         supplyUC,
		SupplierUC:       supplierUC,
		WarehouseUC:      warehouseUC,
		MovementTypeUC:   typeUC,
		MovementReasonUC: reasonUC,
		MovementUC:       movementUC,
		MovementDetailUC: movementDetailUC,
		StockUC:          stockUC,
		AlertUC:          alertUC,
		OrderUC:          orderUC,
		OrderDetailUC:    orderDetailUC,
		InvoiceUC:        invoiceUC,
		InvoicePDFUC:     invoicePDFUC,
		UserUC:           userUC,
		RoleUC:           roleUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
