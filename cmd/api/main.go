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

	_ "github.com/jcastro/trazametal-api/docs"
	"github.com/jcastro/trazametal-api/internal/application/auth"
	appcart "github.com/jcastro/trazametal-api/internal/application/cart"
	applabel "github.com/jcastro/trazametal-api/internal/application/label"
	"github.com/jcastro/trazametal-api/internal/application/orders"
	"github.com/jcastro/trazametal-api/internal/application/tracking"
	"github.com/jcastro/trazametal-api/internal/application/usecase"
	infrapdf "github.com/jcastro/trazametal-api/internal/infrastructure/pdf"
	"github.com/jcastro/trazametal-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastro/trazametal-api/internal/interfaces/http"
	"github.com/jcastro/trazametal-api/pkg/config"
	"github.com/jcastro/trazametal-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	pointRepo := postgres.NewControlPointRepository(pool)
	elementRepo := postgres.NewElementRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	factoryRepo := postgres.NewFactoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	pointUC := usecase.NewControlPointUseCase(pointRepo)
	elementUC := usecase.NewElementUseCase(elementRepo)
	recordMovementUC := tracking.NewRecordMovementUseCase(txRunner)
	historyUC := tracking.NewHistoryUseCase(movementRepo, elementRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	cartUC := appcart.NewCartUseCase(cartRepo, productRepo)
	orderUC := orders.NewOrderUseCase(txRunner, orderRepo, factoryRepo)
	factoryUC := usecase.NewFactoryUseCase(factoryRepo)

	// PDF: etiqueta de marcado con símbolo DataMatrix
	labelGenerator := infrapdf.NewMarotoLabelGenerator()
	labelUC := applabel.NewLabelUseCase(elementRepo, pointRepo, labelGenerator)

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
		Title:    "TrazaMetal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ControlPointUC: pointUC,
		ElementUC:      elementUC,
		LabelUC:        labelUC,
		RecordMovement: recordMovementUC,
		HistoryUC:      historyUC,
		ProductUC:      productUC,
		CartUC:         cartUC,
		OrderUC:        orderUC,
		FactoryUC:      factoryUC,
		JWTSecret:      cfg.JWT.Secret,
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
