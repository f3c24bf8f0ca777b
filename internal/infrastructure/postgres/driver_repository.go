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

var _ repository.DriverRepository = (*DriverRepo)(nil)

const driverColumns = `id, name, surname, national_id, license, phone, email, birth_date, hire_date, license_expires, status, driven_hours, resting, notes, created_at, updated_at`

// DriverRepo implementación del puerto DriverRepository sobre PostgreSQL.
type DriverRepo struct {
	q Querier
}

// NewDriverRepository construye el adaptador de persistencia para camioneros. Pasar pool o tx (Querier).
func NewDriverRepository(q Querier) *DriverRepo {
	return &DriverRepo{q: q}
}

// Create persiste un nuevo camionero. La cédula es única.
func (r *DriverRepo) Create(driver *entity.Driver) error {
	query := `
		INSERT INTO drivers (` + driverColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		driver.ID, driver.Name, driver.Surname, driver.NationalID, driver.License,
		driver.Phone, driver.Email, driver.BirthDate, driver.HireDate, driver.LicenseExpires,
		driver.Status, driver.DrivenHours, driver.Resting, driver.Notes,
		driver.CreatedAt, driver.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert driver: %w", err)
	}
	return nil
}

// GetByID obtiene un camionero por ID.
func (r *DriverRepo) GetByID(id string) (*entity.Driver, error) {
	return r.getOne(`SELECT `+driverColumns+` FROM drivers WHERE id = $1`, id)
}

// GetByNationalID obtiene un camionero por cédula.
func (r *DriverRepo) GetByNationalID(nationalID string) (*entity.Driver, error) {
	return r.getOne(`SELECT `+driverColumns+` FROM drivers WHERE national_id = $1`, nationalID)
}

func (r *DriverRepo) getOne(query, arg string) (*entity.Driver, error) {
	var d entity.Driver
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&d.ID, &d.Name, &d.Surname, &d.NationalID, &d.License, &d.Phone, &d.Email,
		&d.BirthDate, &d.HireDate, &d.LicenseExpires, &d.Status, &d.DrivenHours,
		&d.Resting, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return &d, nil
}

// List lista camioneros ordenados por apellido y nombre.
func (r *DriverRepo) List(limit, offset int) ([]*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers ORDER BY surname, name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	var drivers []*entity.Driver
	for rows.Next() {
		var d entity.Driver
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Surname, &d.NationalID, &d.License, &d.Phone, &d.Email,
			&d.BirthDate, &d.HireDate, &d.LicenseExpires, &d.Status, &d.DrivenHours,
			&d.Resting, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		drivers = append(drivers, &d)
	}
	return drivers, rows.Err()
}

// Update actualiza un camionero existente. La cédula no cambia.
func (r *DriverRepo) Update(driver *entity.Driver) error {
	query := `
		UPDATE drivers
		SET name = $2, surname = $3, license = $4, phone = $5, email = $6,
		    license_expires = $7, status = $8, driven_hours = $9, resting = $10,
		    notes = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		driver.ID, driver.Name, driver.Surname, driver.License, driver.Phone,
		driver.Email, driver.LicenseExpires, driver.Status, driver.DrivenHours,
		driver.Resting, driver.Notes, driver.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update driver: %w", err)
	}
	return nil
}

// Delete elimina un camionero por ID.
func (r *DriverRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete driver: %w", err)
	}
	return nil
}
