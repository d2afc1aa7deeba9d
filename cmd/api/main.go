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

	_ "github.com/jhoicas/dulceria-lilis/docs"
	appanalytics "github.com/jhoicas/dulceria-lilis/internal/application/analytics"
	"github.com/jhoicas/dulceria-lilis/internal/application/auth"
	"github.com/jhoicas/dulceria-lilis/internal/application/inventory"
	"github.com/jhoicas/dulceria-lilis/internal/application/ports"
	"github.com/jhoicas/dulceria-lilis/internal/application/usecase"
	"github.com/jhoicas/dulceria-lilis/internal/infrastructure/excel"
	"github.com/jhoicas/dulceria-lilis/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/dulceria-lilis/internal/infrastructure/pdf"
	"github.com/jhoicas/dulceria-lilis/internal/infrastructure/postgres"
	"github.com/jhoicas/dulceria-lilis/internal/infrastructure/tokenstore"
	httpRouter "github.com/jhoicas/dulceria-lilis/internal/interfaces/http"
	"github.com/jhoicas/dulceria-lilis/pkg/config"
	"github.com/jhoicas/dulceria-lilis/pkg/logger"
)

// @title                       Dulcería Lilis API
// @version                     1.0
// @description                 Catálogo de productos e inventario de Dulcería Lilis.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	// Tokens de recuperación: Redis si está configurado, si no en memoria.
	var tokens ports.TokenStore
	if cfg.Redis.URL != "" {
		rdb, err := tokenstore.NewRedis(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		tokens = tokenstore.NewRedisStore(rdb)
	} else {
		log.Warn().Msg("REDIS_URL vacío: tokens de recuperación en memoria")
		tokens = tokenstore.NewMemoryStore()
	}
	mailer := mail.New(cfg.SMTP, log.Named("mail"))

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	sourcingRepo := postgres.NewProductSupplierRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, tokens, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.ResetConfig{
		BaseURL: cfg.App.BaseURL,
		TTL:     time.Duration(cfg.SMTP.ResetTTLMinutes) * time.Minute,
	}, log.Named("auth"))

	productUC := usecase.NewProductUseCase(productRepo, stockRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, sourcingRepo, productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	lotUC := usecase.NewLotUseCase(lotRepo, productRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	registerMovementUC := inventory.NewRegisterMovementUseCase(
		txRunner, lotRepo, supplierRepo, warehouseRepo, sourcingRepo,
		inventory.Policy{AllowNegativeStock: cfg.Inventory.AllowNegativeStock},
		log.Named("inventory"),
	)
	movementUC := inventory.NewMovementUseCase(movementRepo, productRepo)
	replenishmentUC := inventory.NewReplenishmentUseCase(productRepo, sourcingRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(postgres.NewAnalyticsRepository(pool))

	// PDF: comprobante de movimiento y lista de reposición
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.BaseURL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        httpRouter.NewViews(cfg.App.TemplatesDir, cfg.App.Env == "development"),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dulcería Lilis API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		SupplierUC:       supplierUC,
		WarehouseUC:      warehouseUC,
		LotUC:            lotUC,
		UserUC:           userUC,
		RegisterMovement: registerMovementUC,
		Movements:        movementUC,
		Replenishment:    replenishmentUC,
		Dashboard:        dashboardUC,
		Documents:        pdfGenerator,
		Exporter:         excel.NewWriter(),
		Sessions: httpRouter.NewSessionStore(
			cfg.Session.CookieName,
			time.Duration(cfg.Session.TTLMinutes)*time.Minute,
			cfg.App.Env == "production",
		),
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
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
