package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/petrocontrol/petrocontrol-api/internal/application/dto"
	"github.com/petrocontrol/petrocontrol-api/internal/domain"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/repository"
)

// MaintenanceUseCase casos de uso CRUD para mantenimientos. El costo total
// siempre se recalcula como mano de obra + repuestos.
type MaintenanceUseCase struct {
	repo      repository.MaintenanceRepository
	truckRepo repository.TruckRepository
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(repo repository.MaintenanceRepository, truckRepo repository.TruckRepository) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, truckRepo: truckRepo}
}

// Create crea un mantenimiento para un camión existente.
func (uc *MaintenanceUseCase) Create(in dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	truck, err := uc.truckRepo.GetByCode(in.TruckCode)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, domain.ErrTruckNotFound
	}
	status := in.Status
	if status == "" {
		status = entity.MaintenanceStatusScheduled
	}
	now := time.Now()
	m := &entity.Maintenance{
		ID:          uuid.New().String(),
		TruckCode:   in.TruckCode,
		Type:        in.Type,
		Description: in.Description,
		CheckIn:     in.CheckIn,
		CheckOut:    in.CheckOut,
		LaborCost:   in.LaborCost,
		PartsCost:   in.PartsCost,
		TotalCost:   in.LaborCost.Add(in.PartsCost),
		Workshop:    in.Workshop,
		Status:      status,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(m), nil
}

// GetByID obtiene un mantenimiento por ID.
func (uc *MaintenanceUseCase) GetByID(id string) (*dto.MaintenanceResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return toMaintenanceResponse(m), nil
}

// List lista mantenimientos con paginación.
func (uc *MaintenanceUseCase) List(limit, offset int) (*dto.MaintenanceListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaintenanceResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaintenanceResponse(m))
	}
	return &dto.MaintenanceListResponse{
		Maintenances: items,
		Page:         dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByTruck lista los mantenimientos de un camión.
func (uc *MaintenanceUseCase) ListByTruck(truckCode string) ([]dto.MaintenanceResponse, error) {
	list, err := uc.repo.ListByTruck(truckCode)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaintenanceResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaintenanceResponse(m))
	}
	return items, nil
}

// Update actualiza un mantenimiento y recalcula el costo total.
func (uc *MaintenanceUseCase) Update(id string, in dto.UpdateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if in.Type != nil {
		m.Type = *in.Type
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.CheckIn != nil {
		m.CheckIn = *in.CheckIn
	}
	if in.CheckOut != nil {
		m.CheckOut = in.CheckOut
	}
	if in.LaborCost != nil {
		m.LaborCost = *in.LaborCost
	}
	if in.PartsCost != nil {
		m.PartsCost = *in.PartsCost
	}
	if in.Workshop != nil {
		m.Workshop = *in.Workshop
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.MaintenanceStatusScheduled, entity.MaintenanceStatusInProgress,
			entity.MaintenanceStatusCompleted, entity.MaintenanceStatusCancelled:
			m.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
	}
	m.TotalCost = m.LaborCost.Add(m.PartsCost)
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(m), nil
}

// Delete elimina un mantenimiento por ID.
func (uc *MaintenanceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMaintenanceResponse(m *entity.Maintenance) *dto.MaintenanceResponse {
	if m == nil {
		return nil
	}
	return &dto.MaintenanceResponse{
		ID:          m.ID,
		TruckCode:   m.TruckCode,
		Type:        m.Type,
		Description: m.Description,
		CheckIn:     m.CheckIn,
		CheckOut:    m.CheckOut,
		LaborCost:   m.LaborCost,
		PartsCost:   m.PartsCost,
		TotalCost:   m.TotalCost,
		Workshop:    m.Workshop,
		Status:      m.Status,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
