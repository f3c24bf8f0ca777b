package repository

import (
	"context"
	"time"

	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
)

// MovementFilter acota un scan del ledger. Campos nil = sin filtro.
type MovementFilter struct {
	TruckCode *string
	FuelType  *string
	From      *time.Time
	To        *time.Time
}

// MovementRepository define el puerto de persistencia para el ledger de
// movimientos de combustible. ListAll devuelve el ledger ordenado por fecha
// de creación ascendente; el motor de inventario asume completitud, no orden.
type MovementRepository interface {
	Create(m *entity.FuelMovement) error
	GetByID(id string) (*entity.FuelMovement, error)
	ListAll(ctx context.Context, filter MovementFilter) ([]*entity.FuelMovement, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.FuelMovement, error)
	ListByTruck(ctx context.Context, truckCode string) ([]*entity.FuelMovement, error)
	Update(m *entity.FuelMovement) error
	Delete(id string) error
}
