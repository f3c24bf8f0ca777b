package repository

import "github.com/petrocontrol/petrocontrol-api/internal/domain/entity"

// MaintenanceRepository define el puerto de persistencia para Maintenance (DIP).
type MaintenanceRepository interface {
	Create(m *entity.Maintenance) error
	GetByID(id string) (*entity.Maintenance, error)
	List(limit, offset int) ([]*entity.Maintenance, error)
	ListByTruck(truckCode string) ([]*entity.Maintenance, error)
	Update(m *entity.Maintenance) error
	Delete(id string) error
}
