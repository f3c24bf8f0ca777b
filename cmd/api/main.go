package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/petrocontrol/petrocontrol-api/internal/application/auth"
	appinventory "github.com/petrocontrol/petrocontrol-api/internal/application/inventory"
	"github.com/petrocontrol/petrocontrol-api/internal/application/usecase"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/inventory"
	"github.com/petrocontrol/petrocontrol-api/internal/infrastructure/excel"
	infrapdf "github.com/petrocontrol/petrocontrol-api/internal/infrastructure/pdf"
	"github.com/petrocontrol/petrocontrol-api/internal/infrastructure/postgres"
	httpRouter "github.com/petrocontrol/petrocontrol-api/internal/interfaces/http"
	"github.com/petrocontrol/petrocontrol-api/pkg/config"
	"github.com/petrocontrol/petrocontrol-api/pkg/logger"
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

	if err := postgres.Migrate(ctx, cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	truckRepo := postgres.NewTruckRepository(pool)
	driverRepo := postgres.NewDriverRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	tripRepo := postgres.NewTripRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	truckUC := usecase.NewTruckUseCase(truckRepo, maintenanceRepo)
	driverUC := usecase.NewDriverUseCase(driverRepo)
	maintenanceUC := usecase.NewMaintenanceUseCase(maintenanceRepo, truckRepo)
	tripUC := usecase.NewTripUseCase(tripRepo, truckRepo, driverRepo)
	movementUC := usecase.NewMovementUseCase(movementRepo, truckRepo)
	reportUC := appinventory.NewReportUseCase(movementRepo, truckRepo, capacityConfig(cfg.Inventory))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		TruckUC:       truckUC,
		DriverUC:      driverUC,
		MaintenanceUC: maintenanceUC,
		TripUC:        tripUC,
		MovementUC:    movementUC,
		ReportUC:      reportUC,
		ExcelExporter: excel.NewReportExporter(),
		PDFExporter:   infrapdf.NewReportPDFGenerator(),
		JWTSecret:     cfg.JWT.Secret,
		ExposeMetrics: cfg.Metrics.Enabled,
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

// capacityConfig traduce la configuración plana a la del evaluador de alertas.
func capacityConfig(in config.InventoryConfig) inventory.CapacityConfig {
	perType := make(map[inventory.FuelType]decimal.Decimal, len(in.PerTypeCapacity))
	for t, q := range in.PerTypeCapacity {
		perType[inventory.NormalizeFuelType(t)] = q
	}
	return inventory.CapacityConfig{Default: in.DefaultCapacity, PerType: perType}
}
