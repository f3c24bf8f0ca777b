package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/petrocontrol/petrocontrol-api/internal/domain"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, truck_code, driver_name, date, fuel_type, quantity, direction, origin, destination, notes, created_at, updated_at`

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// La columna date es NULL cuando el movimiento no informó fecha lógica: la
// entidad representa eso con el valor cero y resuelve la fecha efectiva con
// EffectiveDate().
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para el ledger. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un nuevo movimiento de combustible.
func (r *MovementRepo) Create(m *entity.FuelMovement) error {
	query := `
		INSERT INTO fuel_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.TruckCode, m.DriverName, nullableTime(m.Date), m.FuelType,
		m.Quantity, m.Direction, m.Origin, m.Destination, m.Notes,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrTruckNotFound
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.FuelMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM fuel_movements WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListAll devuelve el ledger completo en orden de creación ascendente,
// aplicando los filtros opcionales. El filtro de tipo compara contra la
// etiqueta normalizada (minúsculas, sin espacios) igual que el agregador.
func (r *MovementRepo) ListAll(ctx context.Context, filter repository.MovementFilter) ([]*entity.FuelMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM fuel_movements`
	var conds []string
	var args []any

	if filter.TruckCode != nil {
		args = append(args, *filter.TruckCode)
		conds = append(conds, fmt.Sprintf("truck_code = $%d", len(args)))
	}
	if filter.FuelType != nil {
		args = append(args, *filter.FuelType)
		conds = append(conds, fmt.Sprintf("lower(btrim(fuel_type)) = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("COALESCE(date, created_at) >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("COALESCE(date, created_at) <= $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListRecent devuelve los últimos movimientos creados, más recientes primero.
func (r *MovementRepo) ListRecent(ctx context.Context, limit int) ([]*entity.FuelMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM fuel_movements ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByTruck devuelve los movimientos de un camión en orden de creación.
func (r *MovementRepo) ListByTruck(ctx context.Context, truckCode string) ([]*entity.FuelMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM fuel_movements WHERE truck_code = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(ctx, query, truckCode)
	if err != nil {
		return nil, fmt.Errorf("list movements by truck: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// Update actualiza un movimiento existente.
func (r *MovementRepo) Update(m *entity.FuelMovement) error {
	query := `
		UPDATE fuel_movements
		SET truck_code = $2, driver_name = $3, date = $4, fuel_type = $5, quantity = $6,
		    direction = $7, origin = $8, destination = $9, notes = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.TruckCode, m.DriverName, nullableTime(m.Date), m.FuelType, m.Quantity,
		m.Direction, m.Origin, m.Destination, m.Notes, m.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrTruckNotFound
		}
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// Delete elimina un movimiento por ID. El borrado es duro: el registro
// desaparece de todas las agregaciones futuras.
func (r *MovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fuel_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.FuelMovement, error) {
	var m entity.FuelMovement
	var date *time.Time
	err := row.Scan(
		&m.ID, &m.TruckCode, &m.DriverName, &date, &m.FuelType, &m.Quantity,
		&m.Direction, &m.Origin, &m.Destination, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if date != nil {
		m.Date = *date
	}
	return &m, nil
}

func scanMovements(rows pgx.Rows) ([]*entity.FuelMovement, error) {
	var list []*entity.FuelMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// nullableTime traduce el valor cero de time.Time a NULL.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
