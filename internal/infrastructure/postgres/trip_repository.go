package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/petrocontrol/petrocontrol-api/internal/domain"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/repository"
)

var _ repository.TripRepository = (*TripRepo)(nil)

const tripColumns = `id, truck_code, driver_id, origin, destination, distance_km, cargo_kg, departure, arrival, status, notes, created_at, updated_at`

// TripRepo implementación del puerto TripRepository sobre PostgreSQL.
type TripRepo struct {
	q Querier
}

// NewTripRepository construye el adaptador de persistencia para viajes. Pasar pool o tx (Querier).
func NewTripRepository(q Querier) *TripRepo {
	return &TripRepo{q: q}
}

// Create persiste un nuevo viaje.
func (r *TripRepo) Create(trip *entity.Trip) error {
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		trip.ID, trip.TruckCode, trip.DriverID, trip.Origin, trip.Destination,
		trip.DistanceKm, trip.CargoKg, trip.Departure, trip.Arrival, trip.Status,
		trip.Notes, trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert trip: %w", err)
	}
	return nil
}

// GetByID obtiene un viaje por ID.
func (r *TripRepo) GetByID(id string) (*entity.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`
	var t entity.Trip
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.TruckCode, &t.DriverID, &t.Origin, &t.Destination, &t.DistanceKm,
		&t.CargoKg, &t.Departure, &t.Arrival, &t.Status, &t.Notes,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return &t, nil
}

// List lista viajes ordenados por salida descendente.
func (r *TripRepo) List(limit, offset int) ([]*entity.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY departure DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()
	return scanTrips(rows)
}

// ListByTruck lista los viajes de un camión, más recientes primero.
func (r *TripRepo) ListByTruck(truckCode string) ([]*entity.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE truck_code = $1 ORDER BY departure DESC`
	rows, err := r.q.Query(context.Background(), query, truckCode)
	if err != nil {
		return nil, fmt.Errorf("list trips by truck: %w", err)
	}
	defer rows.Close()
	return scanTrips(rows)
}

// ListByDriver lista los viajes de un camionero, más recientes primero.
func (r *TripRepo) ListByDriver(driverID string) ([]*entity.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE driver_id = $1 ORDER BY departure DESC`
	rows, err := r.q.Query(context.Background(), query, driverID)
	if err != nil {
		return nil, fmt.Errorf("list trips by driver: %w", err)
	}
	defer rows.Close()
	return scanTrips(rows)
}

func scanTrips(rows pgx.Rows) ([]*entity.Trip, error) {
	var list []*entity.Trip
	for rows.Next() {
		var t entity.Trip
		if err := rows.Scan(
			&t.ID, &t.TruckCode, &t.DriverID, &t.Origin, &t.Destination, &t.DistanceKm,
			&t.CargoKg, &t.Departure, &t.Arrival, &t.Status, &t.Notes,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza un viaje existente.
func (r *TripRepo) Update(trip *entity.Trip) error {
	query := `
		UPDATE trips
		SET origin = $2, destination = $3, distance_km = $4, cargo_kg = $5,
		    departure = $6, arrival = $7, status = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		trip.ID, trip.Origin, trip.Destination, trip.DistanceKm, trip.CargoKg,
		trip.Departure, trip.Arrival, trip.Status, trip.Notes, trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update trip: %w", err)
	}
	return nil
}

// Delete elimina un viaje por ID.
func (r *TripRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	return nil
}
