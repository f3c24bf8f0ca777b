package entity

import "time"

// Estados de un camionero.
const (
	DriverStatusActive   = "activo"
	DriverStatusInactive = "inactivo"
)

// Driver representa un camionero (conductor de la flota).
type Driver struct {
	ID             string
	Name           string
	Surname        string
	NationalID     string // cédula, única
	License        string
	Phone          string
	Email          string
	BirthDate      time.Time
	HireDate       time.Time
	LicenseExpires *time.Time
	Status         string // activo, inactivo
	DrivenHours    int
	Resting        bool
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Available indica si el camionero puede ser asignado a un viaje.
func (d *Driver) Available() bool {
	return d.Status == DriverStatusActive && !d.Resting
}
