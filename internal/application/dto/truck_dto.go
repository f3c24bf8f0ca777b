package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTruckRequest entrada para crear un camión.
type CreateTruckRequest struct {
	Code        string          `json:"camionId" validate:"required"`
	Plate       string          `json:"placa" validate:"required"`
	Brand       string          `json:"marca" validate:"required"`
	Model       string          `json:"modelo" validate:"required"`
	Year        int             `json:"anio" validate:"omitempty,min=1950"`
	Capacity    decimal.Decimal `json:"capacidad" validate:"required"`
	Status      string          `json:"estado" validate:"omitempty,oneof=activo inactivo mantenimiento"`
	Mileage     decimal.Decimal `json:"kilometraje"`
	VehicleType string          `json:"tipoVehiculo"`
	Notes       string          `json:"notas"`
	DriverID    *string         `json:"camioneroId"`
}

// UpdateTruckRequest entrada para actualización parcial (nil = sin cambio).
type UpdateTruckRequest struct {
	Plate       *string          `json:"placa"`
	Brand       *string          `json:"marca"`
	Model       *string          `json:"modelo"`
	Year        *int             `json:"anio"`
	Capacity    *decimal.Decimal `json:"capacidad"`
	Status      *string          `json:"estado"`
	Mileage     *decimal.Decimal `json:"kilometraje"`
	VehicleType *string          `json:"tipoVehiculo"`
	Notes       *string          `json:"notas"`
	DriverID    *string          `json:"camioneroId"`
}

// TruckResponse salida de un camión.
type TruckResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"camionId"`
	Plate        string          `json:"placa"`
	Brand        string          `json:"marca"`
	Model        string          `json:"modelo"`
	Year         int             `json:"anio"`
	Capacity     decimal.Decimal `json:"capacidad"`
	Status       string          `json:"estado"`
	Availability string          `json:"estadoCalculado,omitempty"`
	Mileage      decimal.Decimal `json:"kilometraje"`
	VehicleType  string          `json:"tipoVehiculo"`
	Notes        string          `json:"notas,omitempty"`
	DriverID     *string         `json:"camioneroId,omitempty"`
	CreatedAt    time.Time       `json:"fechaCreacion"`
	UpdatedAt    time.Time       `json:"fechaActualizacion"`
}

// TruckListResponse listado paginado de camiones.
type TruckListResponse struct {
	Trucks []TruckResponse `json:"camiones"`
	Page   PageResponse    `json:"page"`
}
