package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Severidades de alerta. Los valores viajan tal cual en el JSON de respuesta.
const (
	SeverityCritical = "critico"
	SeverityLow      = "advertencia"
)

// Umbrales por defecto sobre la fracción balance/capacidad.
// critico: ratio < 0.20; advertencia: 0.20 <= ratio < 0.40; sin alerta: >= 0.40.
var (
	DefaultCriticalRatio = decimal.NewFromFloat(0.20)
	DefaultLowRatio      = decimal.NewFromFloat(0.40)
)

// CapacityConfig capacidad de almacenamiento para la evaluación de alertas.
// PerType permite capacidad por tipo de petróleo; Default aplica al resto.
type CapacityConfig struct {
	Default decimal.Decimal
	PerType map[FuelType]decimal.Decimal
}

// For devuelve la capacidad aplicable a un tipo de petróleo.
func (c CapacityConfig) For(t FuelType) decimal.Decimal {
	if q, ok := c.PerType[t]; ok {
		return q
	}
	return c.Default
}

// Alert señala un tipo de petróleo por debajo de los umbrales de capacidad.
type Alert struct {
	FuelType FuelType
	Severity string          // critico | advertencia
	Quantity decimal.Decimal // balance recortado a cero para presentación
	Percent  decimal.Decimal // balance/capacidad * 100, sin recortar
}

// EvaluateAlerts clasifica cada tipo presente en el balance contra su
// capacidad. Solo se emiten los tipos en nivel critico o advertencia; los
// que están en 0.40 o más se omiten. La salida va ordenada por tipo para
// que un mismo balance produzca siempre la misma secuencia.
//
// Los límites son semiabiertos: exactamente 0.20 es advertencia (no
// critico) y exactamente 0.40 ya no alerta.
func EvaluateAlerts(balances Balance, capacities CapacityConfig) []Alert {
	types := make([]FuelType, 0, len(balances))
	for t := range balances {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	var alerts []Alert
	for _, t := range types {
		capacity := capacities.For(t)
		if !capacity.IsPositive() {
			continue // sin capacidad configurada no hay ratio que evaluar
		}
		qty := balances.Get(t)
		ratio := qty.Div(capacity)

		var severity string
		switch {
		case ratio.LessThan(DefaultCriticalRatio):
			severity = SeverityCritical
		case ratio.LessThan(DefaultLowRatio):
			severity = SeverityLow
		default:
			continue
		}
		alerts = append(alerts, Alert{
			FuelType: t,
			Severity: severity,
			Quantity: ClampNonNegative(qty),
			Percent:  ratio.Mul(decimal.NewFromInt(100)),
		})
	}
	return alerts
}
