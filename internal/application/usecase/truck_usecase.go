package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/petrocontrol/petrocontrol-api/internal/application/dto"
	"github.com/petrocontrol/petrocontrol-api/internal/domain"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/repository"
)

// TruckUseCase casos de uso CRUD para camiones. El estado calculado
// (disponibilidad) se deriva de los mantenimientos en curso.
type TruckUseCase struct {
	repo      repository.TruckRepository
	maintRepo repository.MaintenanceRepository
}

// NewTruckUseCase construye el caso de uso.
func NewTruckUseCase(repo repository.TruckRepository, maintRepo repository.MaintenanceRepository) *TruckUseCase {
	return &TruckUseCase{repo: repo, maintRepo: maintRepo}
}

// Create crea un camión. El código de camión (ej: "CAM-001") es único.
func (uc *TruckUseCase) Create(in dto.CreateTruckRequest) (*dto.TruckResponse, error) {
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	status := in.Status
	if status == "" {
		status = entity.TruckStatusActive
	}
	now := time.Now()
	truck := &entity.Truck{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Plate:       in.Plate,
		Brand:       in.Brand,
		Model:       in.Model,
		Year:        in.Year,
		Capacity:    in.Capacity,
		Status:      status,
		Mileage:     in.Mileage,
		VehicleType: in.VehicleType,
		Notes:       in.Notes,
		DriverID:    in.DriverID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(truck); err != nil {
		return nil, err
	}
	return toTruckResponse(truck, nil), nil
}

// GetByID obtiene un camión por ID con su disponibilidad calculada.
func (uc *TruckUseCase) GetByID(id string) (*dto.TruckResponse, error) {
	truck, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, nil
	}
	maints, _ := uc.maintRepo.ListByTruck(truck.Code)
	return toTruckResponse(truck, maints), nil
}

// GetByCode obtiene un camión por su código de negocio.
func (uc *TruckUseCase) GetByCode(code string) (*dto.TruckResponse, error) {
	truck, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, nil
	}
	maints, _ := uc.maintRepo.ListByTruck(truck.Code)
	return toTruckResponse(truck, maints), nil
}

// List lista camiones con paginación.
func (uc *TruckUseCase) List(limit, offset int) (*dto.TruckListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TruckResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTruckResponse(t, nil))
	}
	return &dto.TruckListResponse{
		Trucks: items,
		Page:   dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un camión. No permite cambiar el código de negocio:
// los registros y mantenimientos lo referencian.
func (uc *TruckUseCase) Update(id string, in dto.UpdateTruckRequest) (*dto.TruckResponse, error) {
	truck, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, nil
	}
	if in.Plate != nil {
		truck.Plate = *in.Plate
	}
	if in.Brand != nil {
		truck.Brand = *in.Brand
	}
	if in.Model != nil {
		truck.Model = *in.Model
	}
	if in.Year != nil {
		truck.Year = *in.Year
	}
	if in.Capacity != nil {
		truck.Capacity = *in.Capacity
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.TruckStatusActive, entity.TruckStatusInactive, entity.TruckStatusMaintenance:
			truck.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Mileage != nil {
		truck.Mileage = *in.Mileage
	}
	if in.VehicleType != nil {
		truck.VehicleType = *in.VehicleType
	}
	if in.Notes != nil {
		truck.Notes = *in.Notes
	}
	if in.DriverID != nil {
		truck.DriverID = in.DriverID
	}
	truck.UpdatedAt = time.Now()
	if err := uc.repo.Update(truck); err != nil {
		return nil, err
	}
	return toTruckResponse(truck, nil), nil
}

// Delete elimina un camión por ID.
func (uc *TruckUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toTruckResponse(t *entity.Truck, maints []*entity.Maintenance) *dto.TruckResponse {
	if t == nil {
		return nil
	}
	return &dto.TruckResponse{
		ID:           t.ID,
		Code:         t.Code,
		Plate:        t.Plate,
		Brand:        t.Brand,
		Model:        t.Model,
		Year:         t.Year,
		Capacity:     t.Capacity,
		Status:       t.Status,
		Availability: t.Availability(maints),
		Mileage:      t.Mileage,
		VehicleType:  t.VehicleType,
		Notes:        t.Notes,
		DriverID:     t.DriverID,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
