// Package inventory implementa el motor de inventario de combustible:
// agregación de balances por tipo de petróleo, reconstrucción histórica
// día a día, evaluación de alertas por capacidad y estadísticas por camión.
//
// Todas las operaciones son reducciones puras sobre un snapshot del ledger
// ya materializado en memoria por la capa de persistencia: no hacen I/O,
// no retienen estado y son seguras bajo invocación concurrente.
package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
)

// FuelType etiqueta normalizada de un tipo de petróleo.
type FuelType string

// UnknownFuelType bucket para registros sin tipo de petróleo informado.
const UnknownFuelType FuelType = "desconocido"

// NormalizeFuelType normaliza la etiqueta a minúsculas; vacía → "desconocido".
func NormalizeFuelType(label string) FuelType {
	s := strings.ToLower(strings.TrimSpace(label))
	if s == "" {
		return UnknownFuelType
	}
	return FuelType(s)
}

// Balance mapea tipo de petróleo → cantidad neta (entradas - salidas).
// El valor puede ser negativo si las salidas registradas superan las
// entradas; el recorte a cero es política de presentación, no de datos.
type Balance map[FuelType]decimal.Decimal

// Get devuelve la cantidad del tipo, cero si no existe.
func (b Balance) Get(t FuelType) decimal.Decimal {
	if q, ok := b[t]; ok {
		return q
	}
	return decimal.Zero
}

// Clone copia el balance (para snapshots).
func (b Balance) Clone() Balance {
	out := make(Balance, len(b))
	for t, q := range b {
		out[t] = q
	}
	return out
}

// Total suma todas las cantidades del balance, recortando negativos a cero
// (misma política de presentación que el inventario actual).
func (b Balance) Total() decimal.Decimal {
	total := decimal.Zero
	for _, q := range b {
		total = total.Add(ClampNonNegative(q))
	}
	return total
}

// ClampNonNegative recorta una cantidad negativa a cero. Solo para
// presentación: el balance crudo conserva el signo.
func ClampNonNegative(q decimal.Decimal) decimal.Decimal {
	if q.IsNegative() {
		return decimal.Zero
	}
	return q
}

// ComputeBalances pliega los movimientos en un balance por tipo de petróleo.
// entrada suma, salida resta; la suma es conmutativa, así que el orden de los
// registros no afecta el resultado. Ledger vacío → balance vacío.
func ComputeBalances(movements []*entity.FuelMovement) Balance {
	balances := make(Balance)
	for _, m := range movements {
		apply(balances, m)
	}
	return balances
}

// apply acumula un movimiento sobre el balance en sitio.
func apply(b Balance, m *entity.FuelMovement) {
	t := NormalizeFuelType(m.FuelType)
	switch m.Direction {
	case entity.DirectionIn:
		b[t] = b.Get(t).Add(m.Quantity)
	case entity.DirectionOut:
		b[t] = b.Get(t).Sub(m.Quantity)
	}
}
