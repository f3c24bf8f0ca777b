package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un mantenimiento.
const (
	MaintenanceStatusScheduled  = "programado"
	MaintenanceStatusInProgress = "en_proceso"
	MaintenanceStatusCompleted  = "completado"
	MaintenanceStatusCancelled  = "cancelado"
)

// Maintenance representa una intervención de taller sobre un camión.
// TruckCode referencia Truck.Code (no el UUID interno).
type Maintenance struct {
	ID          string
	TruckCode   string
	Type        string // preventivo, correctivo, ...
	Description string
	CheckIn     time.Time
	CheckOut    *time.Time
	LaborCost   decimal.Decimal
	PartsCost   decimal.Decimal
	TotalCost   decimal.Decimal
	Workshop    string
	Status      string // ver constantes MaintenanceStatus*
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
