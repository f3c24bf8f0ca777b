package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/petrocontrol/petrocontrol-api/internal/application/dto"
	appinventory "github.com/petrocontrol/petrocontrol-api/internal/application/inventory"
	"github.com/petrocontrol/petrocontrol-api/internal/domain"
)

// ReportExcelExporter serializa el reporte de inventario a XLSX.
type ReportExcelExporter interface {
	Export(summary *dto.InventorySummaryResponse, stats *dto.TruckStatsResponse) ([]byte, error)
}

// ReportPDFExporter serializa el reporte de inventario a PDF.
type ReportPDFExporter interface {
	GenerateReportPDF(summary *dto.InventorySummaryResponse, stats *dto.TruckStatsResponse) ([]byte, error)
}

// InventoryHandler maneja los reportes de inventario (protegido).
type InventoryHandler struct {
	uc    *appinventory.ReportUseCase
	excel ReportExcelExporter
	pdf   ReportPDFExporter
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appinventory.ReportUseCase, excel ReportExcelExporter, pdf ReportPDFExporter) *InventoryHandler {
	return &InventoryHandler{uc: uc, excel: excel, pdf: pdf}
}

// Summary responde el resumen de inventario: niveles actuales, totales y
// últimos registros. Sirve /api/inventario/completo y /api/registros/inventario.
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// FuelTypeDetail responde el detalle de un tipo de petróleo.
func (h *InventoryHandler) FuelTypeDetail(c *fiber.Ctx) error {
	fuelType := c.Params("tipo")
	out, err := h.uc.FuelTypeDetail(c.Context(), fuelType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DailyHistory responde el inventario día a día en la ventana ?desde=&hasta=.
func (h *InventoryHandler) DailyHistory(c *fiber.Ctx) error {
	out, err := h.uc.DailyHistory(c.Context(), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Alerts responde las alertas de nivel bajo por capacidad.
func (h *InventoryHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TruckStats responde los totales de movimiento por camión.
func (h *InventoryHandler) TruckStats(c *fiber.Ctx) error {
	out, err := h.uc.TruckStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportExcel descarga el reporte de inventario como XLSX.
func (h *InventoryHandler) ExportExcel(c *fiber.Ctx) error {
	summary, stats, err := h.reportData(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	data, err := h.excel.Export(summary, stats)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	filename := "inventario-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

// ExportPDF descarga el reporte de inventario como PDF.
func (h *InventoryHandler) ExportPDF(c *fiber.Ctx) error {
	summary, stats, err := h.reportData(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	data, err := h.pdf.GenerateReportPDF(summary, stats)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	filename := "inventario-" + time.Now().Format("2006-01-02") + ".pdf"
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}

func (h *InventoryHandler) reportData(c *fiber.Ctx) (*dto.InventorySummaryResponse, *dto.TruckStatsResponse, error) {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return nil, nil, err
	}
	stats, err := h.uc.TruckStats(c.Context())
	if err != nil {
		return nil, nil, err
	}
	return summary, stats, nil
}
