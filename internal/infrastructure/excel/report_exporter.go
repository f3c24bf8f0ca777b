// Package excel genera el reporte de inventario en formato XLSX.
package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/petrocontrol/petrocontrol-api/internal/application/dto"
)

const (
	sheetInventory = "Inventario"
	sheetMovements = "Movimientos"
	sheetTrucks    = "Camiones"
)

// ReportExporter arma el libro XLSX del reporte de inventario: una hoja con
// los niveles por tipo de petróleo, otra con los movimientos y otra con las
// estadísticas por camión.
type ReportExporter struct{}

// NewReportExporter construye el exportador.
func NewReportExporter() *ReportExporter {
	return &ReportExporter{}
}

// Export serializa el resumen y las estadísticas a un XLSX en memoria.
func (e *ReportExporter) Export(summary *dto.InventorySummaryResponse, stats *dto.TruckStatsResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// La hoja por defecto se renombra a la de inventario.
	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(defaultSheet, sheetInventory); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	if err := e.writeInventory(f, summary); err != nil {
		return nil, err
	}
	if err := e.writeMovements(f, summary.Recent); err != nil {
		return nil, err
	}
	if err := e.writeTrucks(f, stats); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *ReportExporter) writeInventory(f *excelize.File, summary *dto.InventorySummaryResponse) error {
	header := []interface{}{"tipoPetroleo", "cantidad", "cantidadReal"}
	if err := f.SetSheetRow(sheetInventory, "A1", &header); err != nil {
		return fmt.Errorf("excel: encabezado inventario: %w", err)
	}
	row := 2
	for _, level := range summary.Inventory {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("excel: celda inventario: %w", err)
		}
		values := []interface{}{
			level.FuelType,
			level.Quantity.InexactFloat64(),
			level.RawValue.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheetInventory, cell, &values); err != nil {
			return fmt.Errorf("excel: fila inventario: %w", err)
		}
		row++
	}

	// Totales del ledger al pie de la hoja.
	row++
	totals := [][]interface{}{
		{"totalEntradas", summary.Stats.TotalIn.InexactFloat64()},
		{"totalSalidas", summary.Stats.TotalOut.InexactFloat64()},
		{"inventarioTotal", summary.Stats.TotalStock.InexactFloat64()},
		{"cantidadRegistros", summary.Stats.RecordCount},
	}
	for _, line := range totals {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("excel: celda totales: %w", err)
		}
		if err := f.SetSheetRow(sheetInventory, cell, &line); err != nil {
			return fmt.Errorf("excel: fila totales: %w", err)
		}
		row++
	}
	return nil
}

func (e *ReportExporter) writeMovements(f *excelize.File, movements []dto.MovementResponse) error {
	if _, err := f.NewSheet(sheetMovements); err != nil {
		return fmt.Errorf("excel: hoja movimientos: %w", err)
	}
	header := []interface{}{"camionId", "conductor", "fechaHora", "tipoPetroleo", "cantidad", "tipo", "origen", "destino"}
	if err := f.SetSheetRow(sheetMovements, "A1", &header); err != nil {
		return fmt.Errorf("excel: encabezado movimientos: %w", err)
	}
	row := 2
	for _, m := range movements {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("excel: celda movimientos: %w", err)
		}
		values := []interface{}{
			m.TruckCode,
			m.DriverName,
			m.Date.Format(time.RFC3339),
			m.FuelType,
			m.Quantity.InexactFloat64(),
			m.Direction,
			m.Origin,
			m.Destination,
		}
		if err := f.SetSheetRow(sheetMovements, cell, &values); err != nil {
			return fmt.Errorf("excel: fila movimientos: %w", err)
		}
		row++
	}
	return nil
}

func (e *ReportExporter) writeTrucks(f *excelize.File, stats *dto.TruckStatsResponse) error {
	if _, err := f.NewSheet(sheetTrucks); err != nil {
		return fmt.Errorf("excel: hoja camiones: %w", err)
	}
	header := []interface{}{"camionId", "placa", "totalEntradas", "totalSalidas", "neto", "cantidadRegistros"}
	if err := f.SetSheetRow(sheetTrucks, "A1", &header); err != nil {
		return fmt.Errorf("excel: encabezado camiones: %w", err)
	}
	row := 2
	for _, s := range stats.Stats {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("excel: celda camiones: %w", err)
		}
		values := []interface{}{
			s.TruckCode,
			s.Plate,
			s.TotalIn.InexactFloat64(),
			s.TotalOut.InexactFloat64(),
			s.Net.InexactFloat64(),
			s.RecordCount,
		}
		if err := f.SetSheetRow(sheetTrucks, cell, &values); err != nil {
			return fmt.Errorf("excel: fila camiones: %w", err)
		}
		row++
	}
	return nil
}
