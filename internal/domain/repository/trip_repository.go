package repository

import "github.com/petrocontrol/petrocontrol-api/internal/domain/entity"

// TripRepository define el puerto de persistencia para Trip (DIP).
type TripRepository interface {
	Create(trip *entity.Trip) error
	GetByID(id string) (*entity.Trip, error)
	List(limit, offset int) ([]*entity.Trip, error)
	ListByTruck(truckCode string) ([]*entity.Trip, error)
	ListByDriver(driverID string) ([]*entity.Trip, error)
	Update(trip *entity.Trip) error
	Delete(id string) error
}
