package repository

import "github.com/petrocontrol/petrocontrol-api/internal/domain/entity"

// DriverRepository define el puerto de persistencia para Driver (DIP).
type DriverRepository interface {
	Create(driver *entity.Driver) error
	GetByID(id string) (*entity.Driver, error)
	GetByNationalID(nationalID string) (*entity.Driver, error)
	List(limit, offset int) ([]*entity.Driver, error)
	Update(driver *entity.Driver) error
	Delete(id string) error
}
