package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/inventory"
)

func day(n int) time.Time {
	return time.Date(2025, 3, n, 0, 0, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeDailyHistory
// ──────────────────────────────────────────────────────────────────────────────

// Escenario concreto del motor: registros en día 1 y día 3, ventana de 4 días.
// día1: 5000, día2: 5000 (arrastre), día3: 2000, día4: 2000 (arrastre).
func TestComputeDailyHistory_EscenarioBasico(t *testing.T) {
	ledger := []*entity.FuelMovement{
		mov("r1", "CAM-001", "diesel", entity.DirectionIn, 5000, 1),
		mov("r2", "CAM-001", "diesel", entity.DirectionOut, 3000, 3),
	}

	history := inventory.ComputeDailyHistory(ledger, day(1), day(4))

	require.Len(t, history, 4)
	expected := []int64{5000, 5000, 2000, 2000}
	for i, snap := range history {
		assert.Equal(t, day(i+1), snap.Day)
		assert.True(t, snap.Balances.Get("diesel").Equal(decimal.NewFromInt(expected[i])),
			"día %d: diesel debe ser %d, fue %s", i+1, expected[i], snap.Balances.Get("diesel"))
	}
}

// Propiedad de arrastre: registros solo en día 1 y día 5 de una ventana de 7.
// Los días 1-4 comparten snapshot y los días 5-7 comparten el actualizado.
func TestComputeDailyHistory_Arrastre(t *testing.T) {
	ledger := []*entity.FuelMovement{
		mov("r1", "CAM-001", "diesel", entity.DirectionIn, 1000, 1),
		mov("r2", "CAM-001", "diesel", entity.DirectionIn, 500, 5),
	}

	history := inventory.ComputeDailyHistory(ledger, day(1), day(7))
	require.Len(t, history, 7)

	for i := 0; i < 4; i++ {
		assert.True(t, history[i].Balances.Get("diesel").Equal(decimal.NewFromInt(1000)),
			"días 1-4 deben arrastrar el snapshot del día 1")
	}
	for i := 4; i < 7; i++ {
		assert.True(t, history[i].Balances.Get("diesel").Equal(decimal.NewFromInt(1500)),
			"días 5-7 deben reflejar el registro del día 5")
	}
}

// Días previos al primer registro snapshottean el balance vacío (cero).
func TestComputeDailyHistory_DiasSinRegistrosPrevios(t *testing.T) {
	ledger := []*entity.FuelMovement{
		mov("r1", "CAM-001", "diesel", entity.DirectionIn, 1000, 3),
	}

	history := inventory.ComputeDailyHistory(ledger, day(1), day(3))
	require.Len(t, history, 3)

	assert.Empty(t, history[0].Balances, "día 1 no tiene registros anteriores")
	assert.Empty(t, history[1].Balances, "día 2 no tiene registros anteriores")
	assert.True(t, history[2].Balances.Get("diesel").Equal(decimal.NewFromInt(1000)))
}

// Ventana invertida → secuencia vacía, sin error.
func TestComputeDailyHistory_VentanaInvertida(t *testing.T) {
	ledger := []*entity.FuelMovement{
		mov("r1", "CAM-001", "diesel", entity.DirectionIn, 1000, 1),
	}
	history := inventory.ComputeDailyHistory(ledger, day(5), day(2))
	assert.Nil(t, history, "windowStart > windowEnd debe producir secuencia vacía")
}

// Ledger vacío → cada día snapshottea el balance vacío.
func TestComputeDailyHistory_LedgerVacio(t *testing.T) {
	history := inventory.ComputeDailyHistory(nil, day(1), day(3))
	require.Len(t, history, 3)
	for _, snap := range history {
		assert.Empty(t, snap.Balances)
	}
}

// Movimiento sin fecha lógica cae en su fecha de creación.
func TestComputeDailyHistory_FallbackFechaCreacion(t *testing.T) {
	m := &entity.FuelMovement{
		ID:        "r1",
		TruckCode: "CAM-001",
		FuelType:  "diesel",
		Direction: entity.DirectionIn,
		Quantity:  decimal.NewFromInt(300),
		CreatedAt: day(2).Add(8 * time.Hour), // sin Date
	}

	history := inventory.ComputeDailyHistory([]*entity.FuelMovement{m}, day(1), day(2))
	require.Len(t, history, 2)
	assert.Empty(t, history[0].Balances)
	assert.True(t, history[1].Balances.Get("diesel").Equal(decimal.NewFromInt(300)))
}

// Los snapshots son copias: mutar uno no contamina los demás días.
func TestComputeDailyHistory_SnapshotsIndependientes(t *testing.T) {
	ledger := []*entity.FuelMovement{
		mov("r1", "CAM-001", "diesel", entity.DirectionIn, 100, 1),
	}
	history := inventory.ComputeDailyHistory(ledger, day(1), day(2))
	require.Len(t, history, 2)

	history[0].Balances["diesel"] = decimal.NewFromInt(-999)
	assert.True(t, history[1].Balances.Get("diesel").Equal(decimal.NewFromInt(100)),
		"los snapshots deben ser independientes entre sí")
}

// Determinismo: con dos registros del mismo instante el desempate por ID
// mantiene el resultado estable entre ejecuciones.
func TestComputeDailyHistory_Deterministico(t *testing.T) {
	a := mov("a", "CAM-001", "diesel", entity.DirectionIn, 100, 1)
	b := mov("b", "CAM-001", "diesel", entity.DirectionOut, 40, 1)

	h1 := inventory.ComputeDailyHistory([]*entity.FuelMovement{a, b}, day(1), day(1))
	h2 := inventory.ComputeDailyHistory([]*entity.FuelMovement{b, a}, day(1), day(1))

	require.Len(t, h1, 1)
	require.Len(t, h2, 1)
	assert.True(t, h1[0].Balances.Get("diesel").Equal(h2[0].Balances.Get("diesel")))
	assert.True(t, h1[0].Balances.Get("diesel").Equal(decimal.NewFromInt(60)))
}
