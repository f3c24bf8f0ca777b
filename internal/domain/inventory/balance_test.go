package inventory_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var baseDay = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// mov construye un movimiento con los campos que importan al motor.
func mov(id, truck, fuelType, direction string, qty float64, day int) *entity.FuelMovement {
	return &entity.FuelMovement{
		ID:        id,
		TruckCode: truck,
		FuelType:  fuelType,
		Direction: direction,
		Quantity:  decimal.NewFromFloat(qty),
		Date:      baseDay.AddDate(0, 0, day-1),
		CreatedAt: baseDay.AddDate(0, 0, day-1),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeBalances
// ──────────────────────────────────────────────────────────────────────────────

// Escenario concreto: +5000 diesel día 1, -3000 diesel día 3 → {diesel: 2000}.
func TestComputeBalances_EscenarioBasico(t *testing.T) {
	ledger := []*entity.FuelMovement{
		mov("r1", "CAM-001", "diesel", entity.DirectionIn, 5000, 1),
		mov("r2", "CAM-001", "diesel", entity.DirectionOut, 3000, 3),
	}

	balances := inventory.ComputeBalances(ledger)

	require.Len(t, balances, 1)
	assert.True(t, balances.Get("diesel").Equal(decimal.NewFromInt(2000)),
		"el balance de diesel debe ser 2000, fue %s", balances.Get("diesel"))
}

// Ledger vacío → balance vacío, sin error.
func TestComputeBalances_LedgerVacio(t *testing.T) {
	balances := inventory.ComputeBalances(nil)
	assert.Empty(t, balances, "ledger vacío debe producir balance vacío")
}

// La etiqueta se normaliza a minúsculas y la vacía cae en "desconocido".
func TestComputeBalances_NormalizacionDeTipo(t *testing.T) {
	ledger := []*entity.FuelMovement{
		mov("r1", "CAM-001", "Diesel", entity.DirectionIn, 100, 1),
		mov("r2", "CAM-001", "DIESEL", entity.DirectionIn, 50, 1),
		mov("r3", "CAM-002", "", entity.DirectionIn, 10, 1),
		mov("r4", "CAM-002", "   ", entity.DirectionIn, 5, 1),
	}

	balances := inventory.ComputeBalances(ledger)

	require.Len(t, balances, 2)
	assert.True(t, balances.Get("diesel").Equal(decimal.NewFromInt(150)),
		"Diesel y DIESEL deben acumular en el mismo bucket")
	assert.True(t, balances.Get(inventory.UnknownFuelType).Equal(decimal.NewFromInt(15)),
		"etiquetas vacías deben caer en el bucket 'desconocido'")
}

// Propiedad de conmutatividad: cualquier permutación del ledger produce el
// mismo balance (la agregación no depende del orden).
func TestComputeBalances_Conmutatividad(t *testing.T) {
	ledger := []*entity.FuelMovement{
		mov("r1", "CAM-001", "diesel", entity.DirectionIn, 5000, 1),
		mov("r2", "CAM-001", "gasolina", entity.DirectionIn, 1200, 2),
		mov("r3", "CAM-002", "diesel", entity.DirectionOut, 3000, 3),
		mov("r4", "CAM-002", "gasolina", entity.DirectionOut, 200, 4),
		mov("r5", "CAM-003", "kerosene", entity.DirectionIn, 700, 5),
	}
	want := inventory.ComputeBalances(ledger)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]*entity.FuelMovement, len(ledger))
		copy(shuffled, ledger)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := inventory.ComputeBalances(shuffled)
		require.Len(t, got, len(want))
		for fuel, qty := range want {
			assert.True(t, got.Get(fuel).Equal(qty),
				"permutación %d: balance de %s debe ser %s, fue %s", i, fuel, qty, got.Get(fuel))
		}
	}
}

// Propiedad de suma cero: cada entrada con su salida gemela deja el neto en cero.
func TestComputeBalances_SumaCero(t *testing.T) {
	ledger := []*entity.FuelMovement{
		mov("r1", "CAM-001", "diesel", entity.DirectionIn, 5000, 1),
		mov("r2", "CAM-002", "diesel", entity.DirectionOut, 5000, 2),
		mov("r3", "CAM-001", "gasolina", entity.DirectionIn, 321.55, 3),
		mov("r4", "CAM-003", "gasolina", entity.DirectionOut, 321.55, 4),
	}

	balances := inventory.ComputeBalances(ledger)

	assert.True(t, balances.Get("diesel").IsZero(), "diesel debe quedar exactamente en cero")
	assert.True(t, balances.Get("gasolina").IsZero(), "gasolina debe quedar exactamente en cero")
}

// El balance crudo puede ser negativo; el recorte es solo de presentación.
func TestComputeBalances_NegativoSinRecortar(t *testing.T) {
	ledger := []*entity.FuelMovement{
		mov("r1", "CAM-001", "diesel", entity.DirectionOut, 800, 1),
	}

	balances := inventory.ComputeBalances(ledger)

	assert.True(t, balances.Get("diesel").Equal(decimal.NewFromInt(-800)),
		"el balance crudo debe conservar el signo negativo")
	assert.True(t, inventory.ClampNonNegative(balances.Get("diesel")).IsZero(),
		"el recorte de presentación debe devolver cero")
}

func TestBalance_Total_RecortaNegativos(t *testing.T) {
	balances := inventory.Balance{
		"diesel":   decimal.NewFromInt(2000),
		"gasolina": decimal.NewFromInt(-500),
	}
	assert.True(t, balances.Total().Equal(decimal.NewFromInt(2000)),
		"el total de presentación ignora los buckets negativos")
}
