package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaintenanceRequest entrada para crear un mantenimiento.
type CreateMaintenanceRequest struct {
	TruckCode   string          `json:"camionId" validate:"required"`
	Type        string          `json:"tipoMantenimiento" validate:"required"`
	Description string          `json:"descripcion" validate:"required"`
	CheckIn     time.Time       `json:"fechaIngreso" validate:"required"`
	CheckOut    *time.Time      `json:"fechaSalida"`
	LaborCost   decimal.Decimal `json:"costoManoObra"`
	PartsCost   decimal.Decimal `json:"costoRepuestos"`
	Workshop    string          `json:"taller"`
	Status      string          `json:"estado" validate:"omitempty,oneof=programado en_proceso completado cancelado"`
	Notes       string          `json:"observaciones"`
}

// UpdateMaintenanceRequest entrada para actualización parcial (nil = sin cambio).
type UpdateMaintenanceRequest struct {
	Type        *string          `json:"tipoMantenimiento"`
	Description *string          `json:"descripcion"`
	CheckIn     *time.Time       `json:"fechaIngreso"`
	CheckOut    *time.Time       `json:"fechaSalida"`
	LaborCost   *decimal.Decimal `json:"costoManoObra"`
	PartsCost   *decimal.Decimal `json:"costoRepuestos"`
	Workshop    *string          `json:"taller"`
	Status      *string          `json:"estado"`
	Notes       *string          `json:"observaciones"`
}

// MaintenanceResponse salida de un mantenimiento.
type MaintenanceResponse struct {
	ID          string          `json:"id"`
	TruckCode   string          `json:"camionId"`
	Type        string          `json:"tipoMantenimiento"`
	Description string          `json:"descripcion"`
	CheckIn     time.Time       `json:"fechaIngreso"`
	CheckOut    *time.Time      `json:"fechaSalida,omitempty"`
	LaborCost   decimal.Decimal `json:"costoManoObra"`
	PartsCost   decimal.Decimal `json:"costoRepuestos"`
	TotalCost   decimal.Decimal `json:"costoTotal"`
	Workshop    string          `json:"taller"`
	Status      string          `json:"estado"`
	Notes       string          `json:"observaciones,omitempty"`
	CreatedAt   time.Time       `json:"fechaCreacion"`
	UpdatedAt   time.Time       `json:"fechaActualizacion"`
}

// MaintenanceListResponse listado paginado de mantenimientos.
type MaintenanceListResponse struct {
	Maintenances []MaintenanceResponse `json:"mantenimientos"`
	Page         PageResponse          `json:"page"`
}
