package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petrocontrol/petrocontrol-api/internal/application/auth"
	appinventory "github.com/petrocontrol/petrocontrol-api/internal/application/inventory"
	"github.com/petrocontrol/petrocontrol-api/internal/application/usecase"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	TruckUC       *usecase.TruckUseCase
	DriverUC      *usecase.DriverUseCase
	MaintenanceUC *usecase.MaintenanceUseCase
	TripUC        *usecase.TripUseCase
	MovementUC    *usecase.MovementUseCase
	ReportUC      *appinventory.ReportUseCase
	ExcelExporter ReportExcelExporter
	PDFExporter   ReportPDFExporter
	JWTSecret     string
	ExposeMetrics bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.ExposeMetrics {
		app.Get("/metrics", MetricsHandler())
	}

	api := app.Group("/api")

	// Auth (register y login públicos; verify requiere token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/verify", AuthMiddleware(deps.JWTSecret), authHandler.Verify)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Camiones
	trucks := protected.Group("/camiones")
	truckHandler := NewTruckHandler(deps.TruckUC)
	trucks.Post("/", truckHandler.Create)
	trucks.Get("/", truckHandler.List)
	trucks.Get("/:id", truckHandler.GetByID)
	trucks.Put("/:id", truckHandler.Update)
	trucks.Delete("/:id", truckHandler.Delete)

	// Camioneros
	drivers := protected.Group("/camioneros")
	driverHandler := NewDriverHandler(deps.DriverUC)
	drivers.Post("/", driverHandler.Create)
	drivers.Get("/", driverHandler.List)
	drivers.Get("/:id", driverHandler.GetByID)
	drivers.Put("/:id", driverHandler.Update)
	drivers.Delete("/:id", driverHandler.Delete)

	// Mantenimientos
	maintenances := protected.Group("/mantenimientos")
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	maintenances.Post("/", maintenanceHandler.Create)
	maintenances.Get("/", maintenanceHandler.List)
	maintenances.Get("/camion/:camionId", maintenanceHandler.ListByTruck)
	maintenances.Get("/:id", maintenanceHandler.GetByID)
	maintenances.Put("/:id", maintenanceHandler.Update)
	maintenances.Delete("/:id", maintenanceHandler.Delete)

	// Viajes
	trips := protected.Group("/viajes")
	tripHandler := NewTripHandler(deps.TripUC)
	trips.Post("/", tripHandler.Create)
	trips.Get("/", tripHandler.List)
	trips.Get("/:id", tripHandler.GetByID)
	trips.Put("/:id", tripHandler.Update)
	trips.Delete("/:id", tripHandler.Delete)

	// Registros de entrada/salida
	movements := protected.Group("/registros")
	movementHandler := NewMovementHandler(deps.MovementUC)
	inventoryHandler := NewInventoryHandler(deps.ReportUC, deps.ExcelExporter, deps.PDFExporter)
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/inventario", inventoryHandler.Summary)
	movements.Get("/camion/:camionId", movementHandler.ListByTruck)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Reportes de inventario
	invGroup := protected.Group("/inventario")
	invGroup.Get("/completo", inventoryHandler.Summary)
	invGroup.Get("/tipo/:tipo", inventoryHandler.FuelTypeDetail)
	invGroup.Get("/reporte", inventoryHandler.DailyHistory)
	invGroup.Get("/reporte/excel", inventoryHandler.ExportExcel)
	invGroup.Get("/reporte/pdf", inventoryHandler.ExportPDF)
	invGroup.Get("/alertas", inventoryHandler.Alerts)
	invGroup.Get("/estadisticas-camiones",
		RequireRole(entity.RoleAdmin, entity.RoleOperador),
		inventoryHandler.TruckStats,
	)
}
