package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/petrocontrol/petrocontrol-api/internal/application/dto"
	"github.com/petrocontrol/petrocontrol-api/internal/domain"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/repository"
)

// MovementUseCase casos de uso CRUD del ledger de movimientos de combustible.
// Todo movimiento referencia un camión existente por código de negocio.
type MovementUseCase struct {
	repo      repository.MovementRepository
	truckRepo repository.TruckRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository, truckRepo repository.TruckRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo, truckRepo: truckRepo}
}

// Create registra una entrada o salida de combustible. Si no se informa
// fecha, el movimiento queda fechado con su fecha de creación.
func (uc *MovementUseCase) Create(in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidDirection(in.Direction) {
		return nil, domain.ErrInvalidDirection
	}
	if in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	truck, err := uc.truckRepo.GetByCode(in.TruckCode)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, domain.ErrTruckNotFound
	}
	now := time.Now()
	var date time.Time
	if in.Date != nil {
		date = *in.Date
	}
	m := &entity.FuelMovement{
		ID:          uuid.New().String(),
		TruckCode:   in.TruckCode,
		DriverName:  in.DriverName,
		Date:        date,
		FuelType:    in.FuelType,
		Quantity:    in.Quantity,
		Direction:   in.Direction,
		Origin:      in.Origin,
		Destination: in.Destination,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMovementResponse(m, truck), nil
}

// GetByID obtiene un movimiento por ID con su camión embebido.
func (uc *MovementUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	truck, _ := uc.truckRepo.GetByCode(m.TruckCode)
	return toMovementResponse(m, truck), nil
}

// List lista movimientos aplicando filtros opcionales por camión, tipo de
// petróleo y rango de fechas.
func (uc *MovementUseCase) List(ctx context.Context, filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	list, err := uc.repo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m, nil))
	}
	return &dto.MovementListResponse{Movements: items, Total: len(items)}, nil
}

// ListByTruck lista los movimientos de un camión.
func (uc *MovementUseCase) ListByTruck(ctx context.Context, truckCode string) (*dto.MovementListResponse, error) {
	list, err := uc.repo.ListByTruck(ctx, truckCode)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m, nil))
	}
	return &dto.MovementListResponse{Movements: items, Total: len(items)}, nil
}

// Update actualiza un movimiento. Cambiar el camión exige que el nuevo
// código exista; cambiar la dirección exige un valor reconocido.
func (uc *MovementUseCase) Update(id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if in.TruckCode != nil {
		truck, err := uc.truckRepo.GetByCode(*in.TruckCode)
		if err != nil {
			return nil, err
		}
		if truck == nil {
			return nil, domain.ErrTruckNotFound
		}
		m.TruckCode = *in.TruckCode
	}
	if in.DriverName != nil {
		m.DriverName = *in.DriverName
	}
	if in.Date != nil {
		m.Date = *in.Date
	}
	if in.FuelType != nil {
		m.FuelType = *in.FuelType
	}
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		m.Quantity = *in.Quantity
	}
	if in.Direction != nil {
		if !entity.ValidDirection(*in.Direction) {
			return nil, domain.ErrInvalidDirection
		}
		m.Direction = *in.Direction
	}
	if in.Origin != nil {
		m.Origin = *in.Origin
	}
	if in.Destination != nil {
		m.Destination = *in.Destination
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toMovementResponse(m, nil), nil
}

// Delete elimina un movimiento por ID. Los reportes derivados reflejan la
// eliminación en la siguiente lectura: no hay estado materializado.
func (uc *MovementUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMovementResponse(m *entity.FuelMovement, truck *entity.Truck) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	resp := &dto.MovementResponse{
		ID:          m.ID,
		TruckCode:   m.TruckCode,
		DriverName:  m.DriverName,
		Date:        m.EffectiveDate(),
		FuelType:    m.FuelType,
		Quantity:    m.Quantity,
		Direction:   m.Direction,
		Origin:      m.Origin,
		Destination: m.Destination,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if truck != nil {
		resp.Truck = toTruckResponse(truck, nil)
	}
	return resp
}
