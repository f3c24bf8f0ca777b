package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/petrocontrol/petrocontrol-api/internal/application/dto"
	"github.com/petrocontrol/petrocontrol-api/internal/domain"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/repository"
)

// DriverUseCase casos de uso CRUD para camioneros.
type DriverUseCase struct {
	repo repository.DriverRepository
}

// NewDriverUseCase construye el caso de uso.
func NewDriverUseCase(repo repository.DriverRepository) *DriverUseCase {
	return &DriverUseCase{repo: repo}
}

// Create crea un camionero. La cédula es única.
func (uc *DriverUseCase) Create(in dto.CreateDriverRequest) (*dto.DriverResponse, error) {
	existing, _ := uc.repo.GetByNationalID(in.NationalID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	hireDate := now
	if in.HireDate != nil {
		hireDate = *in.HireDate
	}
	driver := &entity.Driver{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Surname:        in.Surname,
		NationalID:     in.NationalID,
		License:        in.License,
		Phone:          in.Phone,
		Email:          in.Email,
		BirthDate:      in.BirthDate,
		HireDate:       hireDate,
		LicenseExpires: in.LicenseExpires,
		Status:         entity.DriverStatusActive,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(driver); err != nil {
		return nil, err
	}
	return toDriverResponse(driver), nil
}

// GetByID obtiene un camionero por ID.
func (uc *DriverUseCase) GetByID(id string) (*dto.DriverResponse, error) {
	driver, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, nil
	}
	return toDriverResponse(driver), nil
}

// List lista camioneros con paginación.
func (uc *DriverUseCase) List(limit, offset int) (*dto.DriverListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DriverResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDriverResponse(d))
	}
	return &dto.DriverListResponse{
		Drivers: items,
		Page:    dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un camionero. La cédula no es modificable.
func (uc *DriverUseCase) Update(id string, in dto.UpdateDriverRequest) (*dto.DriverResponse, error) {
	driver, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, nil
	}
	if in.Name != nil {
		driver.Name = *in.Name
	}
	if in.Surname != nil {
		driver.Surname = *in.Surname
	}
	if in.License != nil {
		driver.License = *in.License
	}
	if in.Phone != nil {
		driver.Phone = *in.Phone
	}
	if in.Email != nil {
		driver.Email = *in.Email
	}
	if in.LicenseExpires != nil {
		driver.LicenseExpires = in.LicenseExpires
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.DriverStatusActive, entity.DriverStatusInactive:
			driver.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.DrivenHours != nil {
		driver.DrivenHours = *in.DrivenHours
	}
	if in.Resting != nil {
		driver.Resting = *in.Resting
	}
	if in.Notes != nil {
		driver.Notes = *in.Notes
	}
	driver.UpdatedAt = time.Now()
	if err := uc.repo.Update(driver); err != nil {
		return nil, err
	}
	return toDriverResponse(driver), nil
}

// Delete elimina un camionero por ID.
func (uc *DriverUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toDriverResponse(d *entity.Driver) *dto.DriverResponse {
	if d == nil {
		return nil
	}
	return &dto.DriverResponse{
		ID:             d.ID,
		Name:           d.Name,
		Surname:        d.Surname,
		NationalID:     d.NationalID,
		License:        d.License,
		Phone:          d.Phone,
		Email:          d.Email,
		BirthDate:      d.BirthDate,
		HireDate:       d.HireDate,
		LicenseExpires: d.LicenseExpires,
		Status:         d.Status,
		DrivenHours:    d.DrivenHours,
		Resting:        d.Resting,
		Available:      d.Available(),
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
