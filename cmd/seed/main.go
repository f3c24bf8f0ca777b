// seed crea el usuario administrador inicial y, opcionalmente, una flota de
// ejemplo para ambientes de desarrollo.
//
// Uso: go run ./cmd/seed -user admin -password <clave> [-demo]
// Requiere DATABASE_URL (o las variables DB_*) en el ambiente.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/petrocontrol/petrocontrol-api/internal/application/auth"
	"github.com/petrocontrol/petrocontrol-api/internal/application/dto"
	"github.com/petrocontrol/petrocontrol-api/internal/application/usecase"
	"github.com/petrocontrol/petrocontrol-api/internal/domain"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
	"github.com/petrocontrol/petrocontrol-api/internal/infrastructure/postgres"
	"github.com/petrocontrol/petrocontrol-api/pkg/config"
)

func main() {
	username := flag.String("user", "admin", "username del administrador")
	password := flag.String("password", "", "password del administrador (mínimo 8 caracteres)")
	email := flag.String("email", "", "email del administrador (opcional)")
	demo := flag.Bool("demo", false, "insertar camiones y registros de ejemplo")
	flag.Parse()

	if len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "-password es requerido y debe tener al menos 8 caracteres")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := postgres.Migrate(ctx, cfg.DB); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	user, err := authUC.RegisterUser(dto.RegisterRequest{
		Username: *username,
		Password: *password,
		Email:    *email,
		Role:     entity.RoleAdmin,
	})
	switch {
	case err == domain.ErrUsernameTaken:
		fmt.Printf("Usuario %q ya existe, se omite\n", *username)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Crear administrador: %v\n", err)
		os.Exit(1)
	default:
		fmt.Printf("Administrador creado: %s (%s)\n", user.Username, user.ID)
	}

	if *demo {
		if err := seedDemo(pool); err != nil {
			fmt.Fprintf(os.Stderr, "Datos de ejemplo: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Datos de ejemplo insertados")
	}
}

// seedDemo inserta una flota mínima con movimientos de los últimos días.
func seedDemo(pool *pgxpool.Pool) error {
	truckRepo := postgres.NewTruckRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)

	truckUC := usecase.NewTruckUseCase(truckRepo, maintenanceRepo)
	movementUC := usecase.NewMovementUseCase(movementRepo, truckRepo)

	trucks := []dto.CreateTruckRequest{
		{Code: "CAM-001", Plate: "ABCD12", Brand: "Volvo", Model: "FH16", Year: 2021, Capacity: decimal.NewFromInt(30000)},
		{Code: "CAM-002", Plate: "EFGH34", Brand: "Scania", Model: "R500", Year: 2019, Capacity: decimal.NewFromInt(25000)},
	}
	for _, t := range trucks {
		if _, err := truckUC.Create(t); err != nil && err != domain.ErrDuplicate {
			return err
		}
	}

	now := time.Now()
	movements := []dto.CreateMovementRequest{
		{TruckCode: "CAM-001", DriverName: "Pedro Soto", FuelType: "diesel", Direction: "entrada", Quantity: decimal.NewFromInt(5000), Date: &now},
		{TruckCode: "CAM-001", DriverName: "Pedro Soto", FuelType: "diesel", Direction: "salida", Quantity: decimal.NewFromInt(1200), Date: &now},
		{TruckCode: "CAM-002", DriverName: "Ana Rojas", FuelType: "gasolina 95", Direction: "entrada", Quantity: decimal.NewFromInt(3000), Date: &now},
	}
	for _, m := range movements {
		if _, err := movementUC.Create(m); err != nil {
			return err
		}
	}
	return nil
}
