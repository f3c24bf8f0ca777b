package dto

import "github.com/shopspring/decimal"

// FuelLevelDTO nivel actual de un tipo de petróleo.
// Cantidad va recortada a cero para presentación; CantidadReal conserva el
// balance crudo con signo para diagnóstico (salidas > entradas registradas).
type FuelLevelDTO struct {
	FuelType string          `json:"tipoPetroleo"`
	Quantity decimal.Decimal `json:"cantidad"`
	RawValue decimal.Decimal `json:"cantidadReal"`
}

// LedgerStatsDTO estadísticas globales del ledger.
type LedgerStatsDTO struct {
	TotalIn     decimal.Decimal `json:"totalEntradas"`
	TotalOut    decimal.Decimal `json:"totalSalidas"`
	TotalStock  decimal.Decimal `json:"inventarioTotal"`
	RecordCount int             `json:"cantidadRegistros"`
}

// InventorySummaryResponse respuesta de GET /api/registros/inventario y
// GET /api/inventario/completo: niveles actuales + estadísticas + últimos registros.
type InventorySummaryResponse struct {
	Inventory []FuelLevelDTO     `json:"inventario"`
	Stats     LedgerStatsDTO     `json:"estadisticas"`
	Recent    []MovementResponse `json:"registros"`
	Total     int                `json:"total"`
}

// FuelTypeDetailResponse respuesta de GET /api/inventario/tipo/:tipo.
type FuelTypeDetailResponse struct {
	Level     FuelLevelDTO       `json:"inventario"`
	Movements []MovementResponse `json:"registros"`
	Total     int                `json:"total"`
}

// DailyHistoryResponse respuesta de GET /api/inventario/reporte.
// Historial mapea fecha ISO (YYYY-MM-DD) → tipo de petróleo → cantidad neta
// acumulada al cierre de ese día (con arrastre en días sin registros).
type DailyHistoryResponse struct {
	From    string                                `json:"desde"`
	To      string                                `json:"hasta"`
	History map[string]map[string]decimal.Decimal `json:"historial"`
}

// AlertDTO una alerta de nivel bajo de inventario.
type AlertDTO struct {
	Severity string          `json:"severidad"` // critico | advertencia
	FuelType string          `json:"tipoPetroleo"`
	Quantity decimal.Decimal `json:"cantidad"`
	Percent  decimal.Decimal `json:"porcentaje"`
}

// AlertsResponse respuesta de GET /api/inventario/alertas.
type AlertsResponse struct {
	Alerts []AlertDTO `json:"alertas"`
	Total  int        `json:"total"`
}

// TruckStatsDTO totales de movimiento por camión.
type TruckStatsDTO struct {
	TruckCode   string          `json:"camionId"`
	Plate       string          `json:"placa,omitempty"`
	TotalIn     decimal.Decimal `json:"totalEntradas"`
	TotalOut    decimal.Decimal `json:"totalSalidas"`
	Net         decimal.Decimal `json:"neto"`
	RecordCount int             `json:"cantidadRegistros"`
}

// TruckStatsResponse respuesta de GET /api/inventario/estadisticas-camiones.
type TruckStatsResponse struct {
	Stats []TruckStatsDTO `json:"estadisticas"`
	Total int             `json:"total"`
}
