package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTripRequest entrada para crear un viaje.
type CreateTripRequest struct {
	TruckCode   string           `json:"camionId" validate:"required"`
	DriverID    string           `json:"camioneroId" validate:"required"`
	Origin      string           `json:"origen" validate:"required"`
	Destination string           `json:"destino" validate:"required"`
	DistanceKm  decimal.Decimal  `json:"distanciaKm" validate:"required"`
	CargoKg     *decimal.Decimal `json:"cargaKg"`
	Departure   time.Time        `json:"fechaSalida" validate:"required"`
	Arrival     *time.Time       `json:"fechaLlegada"`
	Notes       string           `json:"observaciones"`
}

// UpdateTripRequest entrada para actualización parcial (nil = sin cambio).
type UpdateTripRequest struct {
	Origin      *string          `json:"origen"`
	Destination *string          `json:"destino"`
	DistanceKm  *decimal.Decimal `json:"distanciaKm"`
	CargoKg     *decimal.Decimal `json:"cargaKg"`
	Departure   *time.Time       `json:"fechaSalida"`
	Arrival     *time.Time       `json:"fechaLlegada"`
	Status      *string          `json:"estado"`
	Notes       *string          `json:"observaciones"`
}

// TripResponse salida de un viaje.
type TripResponse struct {
	ID          string           `json:"id"`
	TruckCode   string           `json:"camionId"`
	DriverID    string           `json:"camioneroId"`
	Origin      string           `json:"origen"`
	Destination string           `json:"destino"`
	DistanceKm  decimal.Decimal  `json:"distanciaKm"`
	CargoKg     *decimal.Decimal `json:"cargaKg,omitempty"`
	Departure   time.Time        `json:"fechaSalida"`
	Arrival     *time.Time       `json:"fechaLlegada,omitempty"`
	Status      string           `json:"estado"`
	Notes       string           `json:"observaciones,omitempty"`
	CreatedAt   time.Time        `json:"fechaCreacion"`
	UpdatedAt   time.Time        `json:"fechaActualizacion"`
}

// TripListResponse listado paginado de viajes.
type TripListResponse struct {
	Trips []TripResponse `json:"viajes"`
	Page  PageResponse   `json:"page"`
}
