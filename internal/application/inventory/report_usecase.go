package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/petrocontrol/petrocontrol-api/internal/application/dto"
	"github.com/petrocontrol/petrocontrol-api/internal/domain"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/inventory"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/repository"
)

const (
	recentLimit       = 10
	defaultWindowDays = 30
	fleetPageLimit    = 500
	dateLayout        = "2006-01-02"
)

// ReportUseCase orquesta los reportes de inventario: carga el ledger desde el
// repositorio y delega la agregación al motor de dominio. Los reportes se
// derivan siempre del conjunto completo de movimientos, nunca de un estado
// materializado.
type ReportUseCase struct {
	movRepo    repository.MovementRepository
	truckRepo  repository.TruckRepository
	capacities inventory.CapacityConfig
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(movRepo repository.MovementRepository, truckRepo repository.TruckRepository, capacities inventory.CapacityConfig) *ReportUseCase {
	return &ReportUseCase{movRepo: movRepo, truckRepo: truckRepo, capacities: capacities}
}

// Summary genera el resumen de inventario: niveles actuales por tipo de
// petróleo, totales del ledger y los últimos movimientos registrados.
func (uc *ReportUseCase) Summary(ctx context.Context) (*dto.InventorySummaryResponse, error) {
	// Ledger completo y registros recientes en paralelo (consultas independientes)
	type ledgerResult struct {
		rows []*entity.FuelMovement
		err  error
	}
	type recentResult struct {
		rows []*entity.FuelMovement
		err  error
	}

	ledgerChan := make(chan ledgerResult, 1)
	recentChan := make(chan recentResult, 1)

	go func() {
		rows, err := uc.movRepo.ListAll(ctx, repository.MovementFilter{})
		ledgerChan <- ledgerResult{rows, err}
	}()
	go func() {
		rows, err := uc.movRepo.ListRecent(ctx, recentLimit)
		recentChan <- recentResult{rows, err}
	}()

	ledger := <-ledgerChan
	recent := <-recentChan

	if ledger.err != nil {
		return nil, fmt.Errorf("inventario: ledger: %w", ledger.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("inventario: recientes: %w", recent.err)
	}

	balances := inventory.ComputeBalances(ledger.rows)
	totals := inventory.ComputeLedgerTotals(ledger.rows)

	recentDTOs := make([]dto.MovementResponse, 0, len(recent.rows))
	for _, m := range recent.rows {
		recentDTOs = append(recentDTOs, toMovementResponse(m))
	}

	return &dto.InventorySummaryResponse{
		Inventory: buildFuelLevels(balances),
		Stats: dto.LedgerStatsDTO{
			TotalIn:     totals.TotalIn,
			TotalOut:    totals.TotalOut,
			TotalStock:  balances.Total(),
			RecordCount: len(ledger.rows),
		},
		Recent: recentDTOs,
		Total:  len(ledger.rows),
	}, nil
}

// FuelTypeDetail genera el detalle de un tipo de petróleo: su nivel actual y
// todos los movimientos que lo componen. La etiqueta se normaliza igual que
// en la agregación, así "Diesel" y "diesel" consultan el mismo bucket.
func (uc *ReportUseCase) FuelTypeDetail(ctx context.Context, fuelType string) (*dto.FuelTypeDetailResponse, error) {
	normalized := string(inventory.NormalizeFuelType(fuelType))
	rows, err := uc.movRepo.ListAll(ctx, repository.MovementFilter{FuelType: &normalized})
	if err != nil {
		return nil, fmt.Errorf("inventario: tipo %s: %w", normalized, err)
	}

	balances := inventory.ComputeBalances(rows)
	qty := balances.Get(inventory.FuelType(normalized))

	movements := make([]dto.MovementResponse, 0, len(rows))
	for _, m := range rows {
		movements = append(movements, toMovementResponse(m))
	}

	return &dto.FuelTypeDetailResponse{
		Level: dto.FuelLevelDTO{
			FuelType: normalized,
			Quantity: inventory.ClampNonNegative(qty),
			RawValue: qty,
		},
		Movements: movements,
		Total:     len(movements),
	}, nil
}

// DailyHistory reconstruye el inventario día a día en la ventana [desde,
// hasta]. Sin parámetros, la ventana cubre los últimos 30 días. Los días sin
// registros repiten el balance del día anterior (arrastre).
func (uc *ReportUseCase) DailyHistory(ctx context.Context, desde, hasta string) (*dto.DailyHistoryResponse, error) {
	from, to, err := parseWindow(desde, hasta)
	if err != nil {
		return nil, err
	}

	rows, err := uc.movRepo.ListAll(ctx, repository.MovementFilter{})
	if err != nil {
		return nil, fmt.Errorf("inventario: reporte: %w", err)
	}

	snapshots := inventory.ComputeDailyHistory(rows, from, to)
	out := make(map[string]map[string]decimal.Decimal, len(snapshots))
	for _, snap := range snapshots {
		day := make(map[string]decimal.Decimal, len(snap.Balances))
		for t, q := range snap.Balances {
			day[string(t)] = inventory.ClampNonNegative(q)
		}
		out[snap.Day.Format(dateLayout)] = day
	}

	return &dto.DailyHistoryResponse{
		From:    from.Format(dateLayout),
		To:      to.Format(dateLayout),
		History: out,
	}, nil
}

// Alerts evalúa los niveles actuales contra las capacidades configuradas.
func (uc *ReportUseCase) Alerts(ctx context.Context) (*dto.AlertsResponse, error) {
	rows, err := uc.movRepo.ListAll(ctx, repository.MovementFilter{})
	if err != nil {
		return nil, fmt.Errorf("inventario: alertas: %w", err)
	}

	balances := inventory.ComputeBalances(rows)
	alerts := inventory.EvaluateAlerts(balances, uc.capacities)

	items := make([]dto.AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, dto.AlertDTO{
			Severity: a.Severity,
			FuelType: string(a.FuelType),
			Quantity: a.Quantity,
			Percent:  a.Percent,
		})
	}
	return &dto.AlertsResponse{Alerts: items, Total: len(items)}, nil
}

// TruckStats calcula los totales de movimiento por camión sobre el ledger
// completo. Camiones y ledger se consultan en paralelo; la placa se anexa
// cuando el camión sigue existiendo en la flota.
func (uc *ReportUseCase) TruckStats(ctx context.Context) (*dto.TruckStatsResponse, error) {
	type ledgerResult struct {
		rows []*entity.FuelMovement
		err  error
	}
	type fleetResult struct {
		rows []*entity.Truck
		err  error
	}

	ledgerChan := make(chan ledgerResult, 1)
	fleetChan := make(chan fleetResult, 1)

	go func() {
		rows, err := uc.movRepo.ListAll(ctx, repository.MovementFilter{})
		ledgerChan <- ledgerResult{rows, err}
	}()
	go func() {
		rows, err := uc.truckRepo.List(fleetPageLimit, 0)
		fleetChan <- fleetResult{rows, err}
	}()

	ledger := <-ledgerChan
	fleet := <-fleetChan

	if ledger.err != nil {
		return nil, fmt.Errorf("inventario: estadisticas: %w", ledger.err)
	}
	if fleet.err != nil {
		return nil, fmt.Errorf("inventario: flota: %w", fleet.err)
	}

	plates := make(map[string]string, len(fleet.rows))
	for _, t := range fleet.rows {
		plates[t.Code] = t.Plate
	}

	byTruck := make(map[string][]*entity.FuelMovement)
	for _, m := range ledger.rows {
		byTruck[m.TruckCode] = append(byTruck[m.TruckCode], m)
	}

	codes := make([]string, 0, len(byTruck))
	for code := range byTruck {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	items := make([]dto.TruckStatsDTO, 0, len(codes))
	for _, code := range codes {
		stats := inventory.ComputeTruckStats(byTruck[code])
		items = append(items, dto.TruckStatsDTO{
			TruckCode:   code,
			Plate:       plates[code],
			TotalIn:     stats.TotalIn,
			TotalOut:    stats.TotalOut,
			Net:         stats.Net,
			RecordCount: stats.RecordCount,
		})
	}
	return &dto.TruckStatsResponse{Stats: items, Total: len(items)}, nil
}

// parseWindow interpreta los parámetros desde/hasta; vacíos aplican la
// ventana por defecto de los últimos 30 días terminando hoy.
func parseWindow(desde, hasta string) (from, to time.Time, err error) {
	now := time.Now()

	if hasta == "" {
		to = now
	} else {
		to, err = time.ParseInLocation(dateLayout, hasta, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("hasta inválido: %w", domain.ErrInvalidInput)
		}
	}

	if desde == "" {
		from = to.AddDate(0, 0, -(defaultWindowDays - 1))
	} else {
		from, err = time.ParseInLocation(dateLayout, desde, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("desde inválido: %w", domain.ErrInvalidInput)
		}
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("desde posterior a hasta: %w", domain.ErrInvalidInput)
	}
	return from, to, nil
}

func buildFuelLevels(balances inventory.Balance) []dto.FuelLevelDTO {
	types := make([]inventory.FuelType, 0, len(balances))
	for t := range balances {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	levels := make([]dto.FuelLevelDTO, 0, len(types))
	for _, t := range types {
		qty := balances.Get(t)
		levels = append(levels, dto.FuelLevelDTO{
			FuelType: string(t),
			Quantity: inventory.ClampNonNegative(qty),
			RawValue: qty,
		})
	}
	return levels
}

func toMovementResponse(m *entity.FuelMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		TruckCode:   m.TruckCode,
		DriverName:  m.DriverName,
		Date:        m.EffectiveDate(),
		FuelType:    m.FuelType,
		Quantity:    m.Quantity,
		Direction:   m.Direction,
		Origin:      m.Origin,
		Destination: m.Destination,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
