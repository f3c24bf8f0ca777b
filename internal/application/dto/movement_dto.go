package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest entrada para crear un registro de entrada/salida.
// FechaHora opcional: si falta, el movimiento toma la fecha de creación.
type CreateMovementRequest struct {
	TruckCode   string          `json:"camionId" validate:"required"`
	DriverName  string          `json:"conductor" validate:"required"`
	Date        *time.Time      `json:"fechaHora"`
	FuelType    string          `json:"tipoPetroleo" validate:"required"`
	Quantity    decimal.Decimal `json:"cantidad" validate:"required"`
	Direction   string          `json:"tipo" validate:"required,oneof=entrada salida"`
	Origin      string          `json:"origen"`
	Destination string          `json:"destino"`
	Notes       string          `json:"observaciones"`
}

// UpdateMovementRequest entrada para actualización parcial (nil = sin cambio).
type UpdateMovementRequest struct {
	TruckCode   *string          `json:"camionId"`
	DriverName  *string          `json:"conductor"`
	Date        *time.Time       `json:"fechaHora"`
	FuelType    *string          `json:"tipoPetroleo"`
	Quantity    *decimal.Decimal `json:"cantidad"`
	Direction   *string          `json:"tipo"`
	Origin      *string          `json:"origen"`
	Destination *string          `json:"destino"`
	Notes       *string          `json:"observaciones"`
}

// MovementResponse salida de un registro de entrada/salida.
type MovementResponse struct {
	ID          string          `json:"id"`
	TruckCode   string          `json:"camionId"`
	Truck       *TruckResponse  `json:"camion,omitempty"`
	DriverName  string          `json:"conductor"`
	Date        time.Time       `json:"fechaHora"`
	FuelType    string          `json:"tipoPetroleo"`
	Quantity    decimal.Decimal `json:"cantidad"`
	Direction   string          `json:"tipo"`
	Origin      string          `json:"origen,omitempty"`
	Destination string          `json:"destino,omitempty"`
	Notes       string          `json:"observaciones,omitempty"`
	CreatedAt   time.Time       `json:"fechaCreacion"`
	UpdatedAt   time.Time       `json:"fechaActualizacion"`
}

// MovementListResponse listado de registros.
type MovementListResponse struct {
	Movements []MovementResponse `json:"registros"`
	Total     int                `json:"total"`
}
