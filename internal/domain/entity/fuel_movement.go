package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de un movimiento de combustible. Los valores son los del
// protocolo original ("entrada" suma al inventario, "salida" resta).
const (
	DirectionIn  = "entrada"
	DirectionOut = "salida"
)

// ValidDirection indica si s es una dirección de movimiento reconocida.
func ValidDirection(s string) bool {
	return s == DirectionIn || s == DirectionOut
}

// FuelMovement representa un registro de entrada/salida de combustible
// asociado a un camión. El ledger es append-only desde la perspectiva del
// motor de inventario: los reportes se derivan siempre del conjunto completo.
type FuelMovement struct {
	ID          string
	TruckCode   string    // referencia a Truck.Code, obligatoria
	DriverName  string    // conductor en texto libre (no FK a Driver)
	Date        time.Time // fecha/hora lógica del movimiento; cero = usar CreatedAt
	FuelType    string    // etiqueta libre; se normaliza a minúsculas al agregar
	Quantity    decimal.Decimal
	Direction   string // entrada | salida
	Origin      string // solo con sentido en entrada
	Destination string // solo con sentido en salida
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectiveDate devuelve la fecha lógica del movimiento: Date si fue
// informada, si no la fecha de creación (auditoría).
func (m *FuelMovement) EffectiveDate() time.Time {
	if m.Date.IsZero() {
		return m.CreatedAt
	}
	return m.Date
}
