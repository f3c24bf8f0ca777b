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

var _ repository.TruckRepository = (*TruckRepo)(nil)

const truckColumns = `id, code, plate, brand, model, year, capacity, status, mileage, vehicle_type, notes, driver_id, created_at, updated_at`

// TruckRepo implementación del puerto TruckRepository sobre PostgreSQL.
type TruckRepo struct {
	q Querier
}

// NewTruckRepository construye el adaptador de persistencia para camiones. Pasar pool o tx (Querier).
func NewTruckRepository(q Querier) *TruckRepo {
	return &TruckRepo{q: q}
}

// Create persiste un nuevo camión. El código de negocio es único.
func (r *TruckRepo) Create(truck *entity.Truck) error {
	query := `
		INSERT INTO trucks (` + truckColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		truck.ID, truck.Code, truck.Plate, truck.Brand, truck.Model, truck.Year,
		truck.Capacity, truck.Status, truck.Mileage, truck.VehicleType, truck.Notes,
		truck.DriverID, truck.CreatedAt, truck.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert truck: %w", err)
	}
	return nil
}

// GetByID obtiene un camión por ID.
func (r *TruckRepo) GetByID(id string) (*entity.Truck, error) {
	return r.getOne(`SELECT `+truckColumns+` FROM trucks WHERE id = $1`, id)
}

// GetByCode obtiene un camión por su código de negocio.
func (r *TruckRepo) GetByCode(code string) (*entity.Truck, error) {
	return r.getOne(`SELECT `+truckColumns+` FROM trucks WHERE code = $1`, code)
}

func (r *TruckRepo) getOne(query, arg string) (*entity.Truck, error) {
	var t entity.Truck
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&t.ID, &t.Code, &t.Plate, &t.Brand, &t.Model, &t.Year, &t.Capacity,
		&t.Status, &t.Mileage, &t.VehicleType, &t.Notes, &t.DriverID,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get truck: %w", err)
	}
	return &t, nil
}

// List lista camiones ordenados por código.
func (r *TruckRepo) List(limit, offset int) ([]*entity.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list trucks: %w", err)
	}
	defer rows.Close()

	var trucks []*entity.Truck
	for rows.Next() {
		var t entity.Truck
		if err := rows.Scan(
			&t.ID, &t.Code, &t.Plate, &t.Brand, &t.Model, &t.Year, &t.Capacity,
			&t.Status, &t.Mileage, &t.VehicleType, &t.Notes, &t.DriverID,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan truck: %w", err)
		}
		trucks = append(trucks, &t)
	}
	return trucks, rows.Err()
}

// Update actualiza un camión existente. El código de negocio no cambia.
func (r *TruckRepo) Update(truck *entity.Truck) error {
	query := `
		UPDATE trucks
		SET plate = $2, brand = $3, model = $4, year = $5, capacity = $6, status = $7,
		    mileage = $8, vehicle_type = $9, notes = $10, driver_id = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		truck.ID, truck.Plate, truck.Brand, truck.Model, truck.Year, truck.Capacity,
		truck.Status, truck.Mileage, truck.VehicleType, truck.Notes, truck.DriverID,
		truck.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update truck: %w", err)
	}
	return nil
}

// Delete elimina un camión. Falla con ErrConflict si el ledger lo referencia.
func (r *TruckRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM trucks WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete truck: %w", err)
	}
	return nil
}
