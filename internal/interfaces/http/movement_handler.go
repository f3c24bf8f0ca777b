package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/petrocontrol/petrocontrol-api/internal/application/dto"
	"github.com/petrocontrol/petrocontrol-api/internal/application/usecase"
	"github.com/petrocontrol/petrocontrol-api/internal/domain"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/repository"
)

// MovementHandler maneja las peticiones HTTP del ledger de registros (protegido).
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create registra una entrada o salida de combustible.
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TruckCode == "" || in.FuelType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "camionId y tipoPetroleo son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidDirection:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad no puede ser negativa"})
		case domain.ErrTruckNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "TRUCK_NOT_FOUND", Message: "el camión no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	countMovementCreated(out.Direction)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un registro por ID.
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	return c.JSON(out)
}

// List lista registros con filtros opcionales por camión, tipo de petróleo
// y rango de fechas (?camionId=&tipoPetroleo=&desde=&hasta=).
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter, err := movementFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato esperado YYYY-MM-DD"})
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByTruck lista los registros de un camión.
func (h *MovementHandler) ListByTruck(c *fiber.Ctx) error {
	truckCode := c.Params("camionId")
	out, err := h.uc.ListByTruck(c.Context(), truckCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update actualiza parcialmente un registro.
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch err {
		case domain.ErrInvalidDirection:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad no puede ser negativa"})
		case domain.ErrTruckNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "TRUCK_NOT_FOUND", Message: "el camión no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	return c.JSON(out)
}

// Delete elimina un registro. El inventario derivado lo olvida de inmediato.
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func movementFilterFromQuery(c *fiber.Ctx) (repository.MovementFilter, error) {
	var filter repository.MovementFilter

	if v := c.Query("camionId"); v != "" {
		filter.TruckCode = &v
	}
	if v := c.Query("tipoPetroleo"); v != "" {
		normalized := strings.ToLower(strings.TrimSpace(v))
		filter.FuelType = &normalized
	}
	if v := c.Query("desde"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, err
		}
		filter.From = &t
	}
	if v := c.Query("hasta"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, err
		}
		// inclusive hasta el final del día
		end := t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		filter.To = &end
	}
	return filter, nil
}
