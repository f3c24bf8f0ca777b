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

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

const maintenanceColumns = `id, truck_code, type, description, check_in, check_out, labor_cost, parts_cost, total_cost, workshop, status, notes, created_at, updated_at`

// MaintenanceRepo implementación del puerto MaintenanceRepository sobre PostgreSQL.
type MaintenanceRepo struct {
	q Querier
}

// NewMaintenanceRepository construye el adaptador de persistencia para mantenimientos. Pasar pool o tx (Querier).
func NewMaintenanceRepository(q Querier) *MaintenanceRepo {
	return &MaintenanceRepo{q: q}
}

// Create persiste un nuevo mantenimiento.
func (r *MaintenanceRepo) Create(m *entity.Maintenance) error {
	query := `
		INSERT INTO maintenances (` + maintenanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.TruckCode, m.Type, m.Description, m.CheckIn, m.CheckOut,
		m.LaborCost, m.PartsCost, m.TotalCost, m.Workshop, m.Status, m.Notes,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrTruckNotFound
		}
		return fmt.Errorf("insert maintenance: %w", err)
	}
	return nil
}

// GetByID obtiene un mantenimiento por ID.
func (r *MaintenanceRepo) GetByID(id string) (*entity.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances WHERE id = $1`
	var m entity.Maintenance
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.TruckCode, &m.Type, &m.Description, &m.CheckIn, &m.CheckOut,
		&m.LaborCost, &m.PartsCost, &m.TotalCost, &m.Workshop, &m.Status, &m.Notes,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get maintenance: %w", err)
	}
	return &m, nil
}

// List lista mantenimientos ordenados por fecha de ingreso descendente.
func (r *MaintenanceRepo) List(limit, offset int) ([]*entity.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances ORDER BY check_in DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list maintenances: %w", err)
	}
	defer rows.Close()
	return scanMaintenances(rows)
}

// ListByTruck lista los mantenimientos de un camión, más recientes primero.
func (r *MaintenanceRepo) ListByTruck(truckCode string) ([]*entity.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances WHERE truck_code = $1 ORDER BY check_in DESC`
	rows, err := r.q.Query(context.Background(), query, truckCode)
	if err != nil {
		return nil, fmt.Errorf("list maintenances by truck: %w", err)
	}
	defer rows.Close()
	return scanMaintenances(rows)
}

func scanMaintenances(rows pgx.Rows) ([]*entity.Maintenance, error) {
	var list []*entity.Maintenance
	for rows.Next() {
		var m entity.Maintenance
		if err := rows.Scan(
			&m.ID, &m.TruckCode, &m.Type, &m.Description, &m.CheckIn, &m.CheckOut,
			&m.LaborCost, &m.PartsCost, &m.TotalCost, &m.Workshop, &m.Status, &m.Notes,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un mantenimiento existente.
func (r *MaintenanceRepo) Update(m *entity.Maintenance) error {
	query := `
		UPDATE maintenances
		SET type = $2, description = $3, check_in = $4, check_out = $5, labor_cost = $6,
		    parts_cost = $7, total_cost = $8, workshop = $9, status = $10, notes = $11,
		    updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Type, m.Description, m.CheckIn, m.CheckOut, m.LaborCost,
		m.PartsCost, m.TotalCost, m.Workshop, m.Status, m.Notes, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update maintenance: %w", err)
	}
	return nil
}

// Delete elimina un mantenimiento por ID.
func (r *MaintenanceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM maintenances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete maintenance: %w", err)
	}
	return nil
}
