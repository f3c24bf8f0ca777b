package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados operativos de un camión.
const (
	TruckStatusActive      = "activo"
	TruckStatusInactive    = "inactivo"
	TruckStatusMaintenance = "mantenimiento"
)

// Truck representa un camión cisterna de la flota.
// Code es el identificador de negocio (ej: "CAM-001") usado como referencia
// por registros, mantenimientos y viajes.
type Truck struct {
	ID          string
	Code        string // único, ej: "CAM-001"
	Plate       string
	Brand       string
	Model       string
	Year        int
	Capacity    decimal.Decimal // capacidad del tanque en galones
	Status      string          // activo, inactivo, mantenimiento
	Mileage     decimal.Decimal
	VehicleType string          // carga_general, cisterna, ...
	Notes       string
	DriverID    *string // camionero asignado (opcional)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Availability deriva el estado operativo legible del camión.
// Un mantenimiento en proceso prevalece sobre el estado almacenado.
func (t *Truck) Availability(maintenances []*Maintenance) string {
	if t.Status == TruckStatusMaintenance {
		return "En mantenimiento"
	}
	if t.Status == TruckStatusInactive {
		return "Inactivo"
	}
	for _, m := range maintenances {
		if m.Status == MaintenanceStatusInProgress {
			return "En mantenimiento"
		}
	}
	return "Disponible"
}
