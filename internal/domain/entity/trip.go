package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un viaje.
const (
	TripStatusInCourse  = "en_curso"
	TripStatusCompleted = "completado"
	TripStatusCancelled = "cancelado"
)

// Trip representa un viaje de un camión con su camionero asignado.
type Trip struct {
	ID          string
	TruckCode   string
	DriverID    string
	Origin      string
	Destination string
	DistanceKm  decimal.Decimal
	CargoKg     *decimal.Decimal
	Departure   time.Time
	Arrival     *time.Time
	Status      string // en_curso, completado, cancelado
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
