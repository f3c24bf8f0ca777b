// Package pdf genera la representación imprimible del reporte de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: PetroControl │ Fecha de emisión                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo de petróleo | Cantidad | Balance crudo          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Entradas / Salidas / Inventario total              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Camión | Placa | Entradas | Salidas | Neto | Regs    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/petrocontrol/petrocontrol-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportPDFGenerator genera el PDF del reporte de inventario usando Maroto v2.
type ReportPDFGenerator struct{}

// NewReportPDFGenerator construye el generador.
func NewReportPDFGenerator() *ReportPDFGenerator { return &ReportPDFGenerator{} }

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *ReportPDFGenerator) GenerateReportPDF(summary *dto.InventorySummaryResponse, stats *dto.TruckStatsResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor("PetroControl", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(inventoryHeaderRow())
	for _, r := range inventoryRows(summary.Inventory) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summary.Stats))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(truckHeaderRow())
	for _, r := range truckRows(stats.Stats) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de emisión (der).
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(7).Add(
			text.New("PetroControl", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de inventario de combustible", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Emitido: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// inventoryHeaderRow: cabecera de la tabla de niveles.
func inventoryHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tipo de petróleo", 6, align.Left),
		h("Cantidad (gal)", 3, align.Right),
		h("Balance crudo", 3, align.Right),
	)
}

// inventoryRows: una fila por tipo de petróleo.
func inventoryRows(levels []dto.FuelLevelDTO) []core.Row {
	result := make([]core.Row, 0, len(levels))
	for _, l := range levels {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				l.FuelType,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				l.Quantity.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				l.RawValue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales del ledger alineado a la derecha.
func totalsRow(stats dto.LedgerStatsDTO) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Total entradas:"),
			label("Total salidas:"),
			grandLabel("INVENTARIO TOTAL:"),
		),
		col.New(3).Add(
			value(stats.TotalIn.StringFixed(2)),
			value(stats.TotalOut.StringFixed(2)),
			grandValue(stats.TotalStock.StringFixed(2)),
		),
		col.New(2),
	)
}

// truckHeaderRow: cabecera de la tabla de estadísticas por camión.
func truckHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Camión", 2, align.Left),
		h("Placa", 2, align.Left),
		h("Entradas", 2, align.Right),
		h("Salidas", 2, align.Right),
		h("Neto", 2, align.Right),
		h("Registros", 2, align.Center),
	)
}

// truckRows: una fila por camión con movimientos.
func truckRows(stats []dto.TruckStatsDTO) []core.Row {
	result := make([]core.Row, 0, len(stats))
	for _, s := range stats {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				s.TruckCode,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				s.Plate,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				s.TotalIn.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				s.TotalOut.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				s.Net.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", s.RecordCount),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}
