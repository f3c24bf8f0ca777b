package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrocontrol/petrocontrol-api/internal/domain/inventory"
)

func capOf(n int64) inventory.CapacityConfig {
	return inventory.CapacityConfig{Default: decimal.NewFromInt(n)}
}

// ──────────────────────────────────────────────────────────────────────────────
// EvaluateAlerts — límites semiabiertos
// ──────────────────────────────────────────────────────────────────────────────

// Exactamente 0.20 de la capacidad → advertencia, no critico.
func TestEvaluateAlerts_LimiteExacto020EsAdvertencia(t *testing.T) {
	balances := inventory.Balance{"diesel": decimal.NewFromInt(2000)}

	alerts := inventory.EvaluateAlerts(balances, capOf(10000))

	require.Len(t, alerts, 1)
	assert.Equal(t, inventory.SeverityLow, alerts[0].Severity,
		"ratio exactamente 0.20 debe ser advertencia, no critico")
	assert.Equal(t, inventory.FuelType("diesel"), alerts[0].FuelType)
	assert.True(t, alerts[0].Percent.Equal(decimal.NewFromInt(20)))
}

// Exactamente 0.40 de la capacidad → sin alerta.
func TestEvaluateAlerts_LimiteExacto040SinAlerta(t *testing.T) {
	balances := inventory.Balance{"diesel": decimal.NewFromInt(4000)}

	alerts := inventory.EvaluateAlerts(balances, capOf(10000))

	assert.Empty(t, alerts, "ratio exactamente 0.40 no debe generar alerta")
}

// Por debajo de 0.20 → critico.
func TestEvaluateAlerts_DebajoDe020EsCritico(t *testing.T) {
	balances := inventory.Balance{"diesel": decimal.NewFromInt(1999)}

	alerts := inventory.EvaluateAlerts(balances, capOf(10000))

	require.Len(t, alerts, 1)
	assert.Equal(t, inventory.SeverityCritical, alerts[0].Severity)
}

// Balance negativo → critico con cantidad recortada a cero pero porcentaje crudo.
func TestEvaluateAlerts_BalanceNegativo(t *testing.T) {
	balances := inventory.Balance{"diesel": decimal.NewFromInt(-500)}

	alerts := inventory.EvaluateAlerts(balances, capOf(10000))

	require.Len(t, alerts, 1)
	assert.Equal(t, inventory.SeverityCritical, alerts[0].Severity)
	assert.True(t, alerts[0].Quantity.IsZero(), "la cantidad mostrada se recorta a cero")
	assert.True(t, alerts[0].Percent.Equal(decimal.NewFromInt(-5)),
		"el porcentaje conserva el valor crudo para diagnóstico")
}

// Balance vacío → sin alertas.
func TestEvaluateAlerts_BalanceVacio(t *testing.T) {
	alerts := inventory.EvaluateAlerts(inventory.Balance{}, capOf(10000))
	assert.Empty(t, alerts)
}

// La salida va ordenada por tipo de petróleo (determinista).
func TestEvaluateAlerts_OrdenDeterministico(t *testing.T) {
	balances := inventory.Balance{
		"kerosene": decimal.NewFromInt(100),
		"diesel":   decimal.NewFromInt(200),
		"gasolina": decimal.NewFromInt(300),
	}

	alerts := inventory.EvaluateAlerts(balances, capOf(10000))

	require.Len(t, alerts, 3)
	assert.Equal(t, inventory.FuelType("diesel"), alerts[0].FuelType)
	assert.Equal(t, inventory.FuelType("gasolina"), alerts[1].FuelType)
	assert.Equal(t, inventory.FuelType("kerosene"), alerts[2].FuelType)
}

// Capacidad por tipo: el override manda sobre la capacidad por defecto.
func TestEvaluateAlerts_CapacidadPorTipo(t *testing.T) {
	balances := inventory.Balance{
		"diesel":   decimal.NewFromInt(2000),
		"gasolina": decimal.NewFromInt(2000),
	}
	capacities := inventory.CapacityConfig{
		Default: decimal.NewFromInt(10000),
		PerType: map[inventory.FuelType]decimal.Decimal{
			"gasolina": decimal.NewFromInt(4000), // 2000/4000 = 0.50, sin alerta
		},
	}

	alerts := inventory.EvaluateAlerts(balances, capacities)

	require.Len(t, alerts, 1)
	assert.Equal(t, inventory.FuelType("diesel"), alerts[0].FuelType,
		"gasolina con capacidad propia de 4000 queda en 0.50 y no alerta")
}

// Capacidad cero o negativa: el tipo se omite (no hay ratio evaluable).
func TestEvaluateAlerts_CapacidadNoPositiva(t *testing.T) {
	balances := inventory.Balance{"diesel": decimal.NewFromInt(100)}
	alerts := inventory.EvaluateAlerts(balances, capOf(0))
	assert.Empty(t, alerts)
}
