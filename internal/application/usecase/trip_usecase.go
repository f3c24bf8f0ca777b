package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/petrocontrol/petrocontrol-api/internal/application/dto"
	"github.com/petrocontrol/petrocontrol-api/internal/domain"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/repository"
)

// TripUseCase casos de uso CRUD para viajes. Al crear valida que el camión
// exista y que el camionero esté disponible (activo y no en descanso).
type TripUseCase struct {
	repo       repository.TripRepository
	truckRepo  repository.TruckRepository
	driverRepo repository.DriverRepository
}

// NewTripUseCase construye el caso de uso.
func NewTripUseCase(repo repository.TripRepository, truckRepo repository.TruckRepository, driverRepo repository.DriverRepository) *TripUseCase {
	return &TripUseCase{repo: repo, truckRepo: truckRepo, driverRepo: driverRepo}
}

// Create crea un viaje en curso.
func (uc *TripUseCase) Create(in dto.CreateTripRequest) (*dto.TripResponse, error) {
	truck, err := uc.truckRepo.GetByCode(in.TruckCode)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, domain.ErrTruckNotFound
	}
	driver, err := uc.driverRepo.GetByID(in.DriverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, domain.ErrNotFound
	}
	if !driver.Available() {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	trip := &entity.Trip{
		ID:          uuid.New().String(),
		TruckCode:   in.TruckCode,
		DriverID:    in.DriverID,
		Origin:      in.Origin,
		Destination: in.Destination,
		DistanceKm:  in.DistanceKm,
		CargoKg:     in.CargoKg,
		Departure:   in.Departure,
		Arrival:     in.Arrival,
		Status:      entity.TripStatusInCourse,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(trip); err != nil {
		return nil, err
	}
	return toTripResponse(trip), nil
}

// GetByID obtiene un viaje por ID.
func (uc *TripUseCase) GetByID(id string) (*dto.TripResponse, error) {
	trip, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, nil
	}
	return toTripResponse(trip), nil
}

// List lista viajes con paginación.
func (uc *TripUseCase) List(limit, offset int) (*dto.TripListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TripResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTripResponse(t))
	}
	return &dto.TripListResponse{
		Trips: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByTruck lista los viajes de un camión.
func (uc *TripUseCase) ListByTruck(truckCode string) ([]dto.TripResponse, error) {
	list, err := uc.repo.ListByTruck(truckCode)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TripResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTripResponse(t))
	}
	return items, nil
}

// ListByDriver lista los viajes de un camionero.
func (uc *TripUseCase) ListByDriver(driverID string) ([]dto.TripResponse, error) {
	list, err := uc.repo.ListByDriver(driverID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TripResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTripResponse(t))
	}
	return items, nil
}

// Update actualiza un viaje. Completar un viaje con llegada registrada
// cierra el ciclo; no se valida transición estricta de estados.
func (uc *TripUseCase) Update(id string, in dto.UpdateTripRequest) (*dto.TripResponse, error) {
	trip, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, nil
	}
	if in.Origin != nil {
		trip.Origin = *in.Origin
	}
	if in.Destination != nil {
		trip.Destination = *in.Destination
	}
	if in.DistanceKm != nil {
		trip.DistanceKm = *in.DistanceKm
	}
	if in.CargoKg != nil {
		trip.CargoKg = in.CargoKg
	}
	if in.Departure != nil {
		trip.Departure = *in.Departure
	}
	if in.Arrival != nil {
		trip.Arrival = in.Arrival
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.TripStatusInCourse, entity.TripStatusCompleted, entity.TripStatusCancelled:
			trip.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Notes != nil {
		trip.Notes = *in.Notes
	}
	trip.UpdatedAt = time.Now()
	if err := uc.repo.Update(trip); err != nil {
		return nil, err
	}
	return toTripResponse(trip), nil
}

// Delete elimina un viaje por ID.
func (uc *TripUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toTripResponse(t *entity.Trip) *dto.TripResponse {
	if t == nil {
		return nil
	}
	return &dto.TripResponse{
		ID:          t.ID,
		TruckCode:   t.TruckCode,
		DriverID:    t.DriverID,
		Origin:      t.Origin,
		Destination: t.Destination,
		DistanceKm:  t.DistanceKm,
		CargoKg:     t.CargoKg,
		Departure:   t.Departure,
		Arrival:     t.Arrival,
		Status:      t.Status,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
