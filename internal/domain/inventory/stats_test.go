package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// ComputeTruckStats
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTruckStats_ParticionCompleta(t *testing.T) {
	ledger := []*entity.FuelMovement{
		mov("r1", "CAM-001", "diesel", entity.DirectionIn, 5000, 1),
		mov("r2", "CAM-001", "diesel", entity.DirectionOut, 3000, 2),
		mov("r3", "CAM-001", "gasolina", entity.DirectionIn, 1000, 3),
		mov("r4", "CAM-001", "gasolina", entity.DirectionOut, 400, 4),
	}

	stats := inventory.ComputeTruckStats(ledger)

	assert.True(t, stats.TotalIn.Equal(decimal.NewFromInt(6000)))
	assert.True(t, stats.TotalOut.Equal(decimal.NewFromInt(3400)))
	assert.True(t, stats.Net.Equal(decimal.NewFromInt(2600)))
	assert.Equal(t, 4, stats.RecordCount)

	// Completitud de la partición: cada registro cae en exactamente una
	// partición y la suma de ambas cubre todo el ledger del camión.
	total := decimal.Zero
	for _, m := range ledger {
		total = total.Add(m.Quantity)
	}
	assert.True(t, stats.TotalIn.Add(stats.TotalOut).Equal(total),
		"entradas + salidas deben cubrir cada registro exactamente una vez")
}

func TestComputeTruckStats_SinMovimientos(t *testing.T) {
	stats := inventory.ComputeTruckStats(nil)

	assert.True(t, stats.TotalIn.IsZero())
	assert.True(t, stats.TotalOut.IsZero())
	assert.True(t, stats.Net.IsZero())
	assert.Equal(t, 0, stats.RecordCount)
}

// Una dirección no reconocida no suma a ninguna partición pero sí cuenta
// como registro (no se pierde del conteo).
func TestComputeTruckStats_DireccionDesconocida(t *testing.T) {
	ledger := []*entity.FuelMovement{
		mov("r1", "CAM-001", "diesel", entity.DirectionIn, 100, 1),
		mov("r2", "CAM-001", "diesel", "ajuste", 50, 2),
	}

	stats := inventory.ComputeTruckStats(ledger)

	assert.True(t, stats.TotalIn.Equal(decimal.NewFromInt(100)))
	assert.True(t, stats.TotalOut.IsZero())
	assert.Equal(t, 2, stats.RecordCount)
}

func TestComputeLedgerTotals(t *testing.T) {
	ledger := []*entity.FuelMovement{
		mov("r1", "CAM-001", "diesel", entity.DirectionIn, 5000, 1),
		mov("r2", "CAM-002", "diesel", entity.DirectionOut, 1500, 2),
	}

	totals := inventory.ComputeLedgerTotals(ledger)

	require.True(t, totals.TotalIn.Equal(decimal.NewFromInt(5000)))
	require.True(t, totals.TotalOut.Equal(decimal.NewFromInt(1500)))
}
