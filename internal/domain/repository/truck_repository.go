package repository

import "github.com/petrocontrol/petrocontrol-api/internal/domain/entity"

// TruckRepository define el puerto de persistencia para Truck (DIP).
type TruckRepository interface {
	Create(truck *entity.Truck) error
	GetByID(id string) (*entity.Truck, error)
	GetByCode(code string) (*entity.Truck, error)
	List(limit, offset int) ([]*entity.Truck, error)
	Update(truck *entity.Truck) error
	Delete(id string) error
}
