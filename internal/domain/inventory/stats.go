package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
)

// TruckStats totales de movimiento de un camión.
type TruckStats struct {
	TotalIn     decimal.Decimal // suma de entradas
	TotalOut    decimal.Decimal // suma de salidas
	Net         decimal.Decimal // TotalIn - TotalOut
	RecordCount int
}

// ComputeTruckStats particiona los movimientos de un camión por dirección y
// suma cada partición. Cada registro cuenta exactamente una vez; los de
// dirección desconocida solo incrementan el contador.
func ComputeTruckStats(movements []*entity.FuelMovement) TruckStats {
	stats := TruckStats{
		TotalIn:  decimal.Zero,
		TotalOut: decimal.Zero,
	}
	for _, m := range movements {
		switch m.Direction {
		case entity.DirectionIn:
			stats.TotalIn = stats.TotalIn.Add(m.Quantity)
		case entity.DirectionOut:
			stats.TotalOut = stats.TotalOut.Add(m.Quantity)
		}
		stats.RecordCount++
	}
	stats.Net = stats.TotalIn.Sub(stats.TotalOut)
	return stats
}

// LedgerTotals totales globales del ledger para el resumen de inventario.
type LedgerTotals struct {
	TotalIn  decimal.Decimal
	TotalOut decimal.Decimal
}

// ComputeLedgerTotals suma entradas y salidas de todo el ledger.
func ComputeLedgerTotals(movements []*entity.FuelMovement) LedgerTotals {
	stats := ComputeTruckStats(movements)
	return LedgerTotals{TotalIn: stats.TotalIn, TotalOut: stats.TotalOut}
}
