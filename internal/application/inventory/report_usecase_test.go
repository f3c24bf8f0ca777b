package inventory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrocontrol/petrocontrol-api/internal/domain"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/inventory"
	"github.com/petrocontrol/petrocontrol-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ─────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements []*entity.FuelMovement
}

func (f *fakeMovementRepo) Create(m *entity.FuelMovement) error {
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeMovementRepo) GetByID(id string) (*entity.FuelMovement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) ListAll(_ context.Context, filter repository.MovementFilter) ([]*entity.FuelMovement, error) {
	var out []*entity.FuelMovement
	for _, m := range f.movements {
		if filter.TruckCode != nil && m.TruckCode != *filter.TruckCode {
			continue
		}
		if filter.FuelType != nil && string(inventory.NormalizeFuelType(m.FuelType)) != *filter.FuelType {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMovementRepo) ListRecent(_ context.Context, limit int) ([]*entity.FuelMovement, error) {
	n := len(f.movements)
	if limit > n {
		limit = n
	}
	out := make([]*entity.FuelMovement, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, f.movements[i])
	}
	return out, nil
}

func (f *fakeMovementRepo) ListByTruck(_ context.Context, truckCode string) ([]*entity.FuelMovement, error) {
	var out []*entity.FuelMovement
	for _, m := range f.movements {
		if m.TruckCode == truckCode {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) Update(*entity.FuelMovement) error { return nil }
func (f *fakeMovementRepo) Delete(string) error               { return nil }

type fakeTruckRepo struct {
	trucks []*entity.Truck
}

func (f *fakeTruckRepo) Create(t *entity.Truck) error { f.trucks = append(f.trucks, t); return nil }

func (f *fakeTruckRepo) GetByID(id string) (*entity.Truck, error) {
	for _, t := range f.trucks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTruckRepo) GetByCode(code string) (*entity.Truck, error) {
	for _, t := range f.trucks {
		if t.Code == code {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTruckRepo) List(limit, offset int) ([]*entity.Truck, error) {
	return f.trucks, nil
}

func (f *fakeTruckRepo) Update(*entity.Truck) error { return nil }
func (f *fakeTruckRepo) Delete(string) error        { return nil }

func qty(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func mov(id, truck, fuelType, direction string, quantity float64, day int) *entity.FuelMovement {
	base := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	return &entity.FuelMovement{
		ID:        id,
		TruckCode: truck,
		FuelType:  fuelType,
		Quantity:  qty(quantity),
		Direction: direction,
		Date:      base.AddDate(0, 0, day-1),
		CreatedAt: base.AddDate(0, 0, day-1),
	}
}

func newReportUseCase(movs []*entity.FuelMovement, trucks []*entity.Truck) *ReportUseCase {
	return NewReportUseCase(
		&fakeMovementRepo{movements: movs},
		&fakeTruckRepo{trucks: trucks},
		inventory.CapacityConfig{Default: qty(10000)},
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Summary
// ─────────────────────────────────────────────────────────────────────────────

func TestSummary_NivelesYTotales(t *testing.T) {
	movs := []*entity.FuelMovement{
		mov("m1", "CAM-001", "Diesel", entity.DirectionIn, 5000, 1),
		mov("m2", "CAM-002", "diesel", entity.DirectionOut, 3000, 2),
		mov("m3", "CAM-001", "gasolina", entity.DirectionIn, 1500, 3),
	}
	uc := newReportUseCase(movs, nil)

	resp, err := uc.Summary(context.Background())
	require.NoError(t, err)

	// Niveles ordenados por tipo: diesel, gasolina
	require.Len(t, resp.Inventory, 2)
	assert.Equal(t, "diesel", resp.Inventory[0].FuelType)
	assert.True(t, resp.Inventory[0].Quantity.Equal(qty(2000)))
	assert.Equal(t, "gasolina", resp.Inventory[1].FuelType)
	assert.True(t, resp.Inventory[1].Quantity.Equal(qty(1500)))

	assert.True(t, resp.Stats.TotalIn.Equal(qty(6500)))
	assert.True(t, resp.Stats.TotalOut.Equal(qty(3000)))
	assert.True(t, resp.Stats.TotalStock.Equal(qty(3500)))
	assert.Equal(t, 3, resp.Stats.RecordCount)
	assert.Equal(t, 3, resp.Total)
}

func TestSummary_LedgerVacio(t *testing.T) {
	uc := newReportUseCase(nil, nil)

	resp, err := uc.Summary(context.Background())
	require.NoError(t, err)

	assert.Empty(t, resp.Inventory)
	assert.True(t, resp.Stats.TotalStock.IsZero())
	assert.Equal(t, 0, resp.Stats.RecordCount)
	assert.Empty(t, resp.Recent)
}

func TestSummary_RecortaNegativosPeroExponeCrudo(t *testing.T) {
	movs := []*entity.FuelMovement{
		mov("m1", "CAM-001", "diesel", entity.DirectionOut, 500, 1),
	}
	uc := newReportUseCase(movs, nil)

	resp, err := uc.Summary(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Inventory, 1)
	assert.True(t, resp.Inventory[0].Quantity.IsZero(), "cantidad presentada recortada a cero")
	assert.True(t, resp.Inventory[0].RawValue.Equal(qty(-500)), "cantidadReal conserva el signo")
}

func TestSummary_UltimosDiezRegistros(t *testing.T) {
	var movs []*entity.FuelMovement
	for i := 1; i <= 15; i++ {
		movs = append(movs, mov(fmt.Sprintf("m%02d", i), "CAM-001", "diesel", entity.DirectionIn, 100, i))
	}
	uc := newReportUseCase(movs, nil)

	resp, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Recent, 10)
	assert.Equal(t, 15, resp.Total)
}

// ─────────────────────────────────────────────────────────────────────────────
// FuelTypeDetail
// ─────────────────────────────────────────────────────────────────────────────

func TestFuelTypeDetail_NormalizaEtiqueta(t *testing.T) {
	movs := []*entity.FuelMovement{
		mov("m1", "CAM-001", "Diesel", entity.DirectionIn, 1000, 1),
		mov("m2", "CAM-001", "diesel", entity.DirectionOut, 400, 2),
		mov("m3", "CAM-001", "gasolina", entity.DirectionIn, 700, 3),
	}
	uc := newReportUseCase(movs, nil)

	resp, err := uc.FuelTypeDetail(context.Background(), "DIESEL")
	require.NoError(t, err)

	assert.Equal(t, "diesel", resp.Level.FuelType)
	assert.True(t, resp.Level.Quantity.Equal(qty(600)))
	assert.Equal(t, 2, resp.Total)
}

// ─────────────────────────────────────────────────────────────────────────────
// DailyHistory
// ─────────────────────────────────────────────────────────────────────────────

func TestDailyHistory_ArrastreYClaveISO(t *testing.T) {
	movs := []*entity.FuelMovement{
		mov("m1", "CAM-001", "diesel", entity.DirectionIn, 5000, 1),
		mov("m2", "CAM-001", "diesel", entity.DirectionOut, 3000, 3),
	}
	uc := newReportUseCase(movs, nil)

	resp, err := uc.DailyHistory(context.Background(), "2025-03-01", "2025-03-04")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", resp.From)
	assert.Equal(t, "2025-03-04", resp.To)
	require.Len(t, resp.History, 4)

	assert.True(t, resp.History["2025-03-01"]["diesel"].Equal(qty(5000)))
	assert.True(t, resp.History["2025-03-02"]["diesel"].Equal(qty(5000)), "día sin registros arrastra el anterior")
	assert.True(t, resp.History["2025-03-03"]["diesel"].Equal(qty(2000)))
	assert.True(t, resp.History["2025-03-04"]["diesel"].Equal(qty(2000)))
}

func TestDailyHistory_VentanaInvalida(t *testing.T) {
	uc := newReportUseCase(nil, nil)

	_, err := uc.DailyHistory(context.Background(), "2025-03-10", "2025-03-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.DailyHistory(context.Background(), "no-es-fecha", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDailyHistory_VentanaPorDefecto(t *testing.T) {
	uc := newReportUseCase(nil, nil)

	resp, err := uc.DailyHistory(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, resp.History, 30)
}

// ─────────────────────────────────────────────────────────────────────────────
// Alerts
// ─────────────────────────────────────────────────────────────────────────────

func TestAlerts_UsaCapacidadConfigurada(t *testing.T) {
	// capacidad 10000: 1500 → critico (15%), 2500 → advertencia (25%)
	movs := []*entity.FuelMovement{
		mov("m1", "CAM-001", "diesel", entity.DirectionIn, 1500, 1),
		mov("m2", "CAM-001", "gasolina", entity.DirectionIn, 2500, 1),
		mov("m3", "CAM-001", "kerosene", entity.DirectionIn, 9000, 1),
	}
	uc := newReportUseCase(movs, nil)

	resp, err := uc.Alerts(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Alerts, 2)
	assert.Equal(t, "diesel", resp.Alerts[0].FuelType)
	assert.Equal(t, inventory.SeverityCritical, resp.Alerts[0].Severity)
	assert.Equal(t, "gasolina", resp.Alerts[1].FuelType)
	assert.Equal(t, inventory.SeverityLow, resp.Alerts[1].Severity)
	assert.Equal(t, 2, resp.Total)
}

// ─────────────────────────────────────────────────────────────────────────────
// TruckStats
// ─────────────────────────────────────────────────────────────────────────────

func TestTruckStats_ParticionPorCamionConPlaca(t *testing.T) {
	movs := []*entity.FuelMovement{
		mov("m1", "CAM-001", "diesel", entity.DirectionIn, 5000, 1),
		mov("m2", "CAM-001", "diesel", entity.DirectionOut, 2000, 2),
		mov("m3", "CAM-002", "gasolina", entity.DirectionIn, 3000, 3),
	}
	trucks := []*entity.Truck{
		{ID: "t1", Code: "CAM-001", Plate: "ABC-123"},
	}
	uc := newReportUseCase(movs, trucks)

	resp, err := uc.TruckStats(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Stats, 2)

	// orden determinista por código
	assert.Equal(t, "CAM-001", resp.Stats[0].TruckCode)
	assert.Equal(t, "ABC-123", resp.Stats[0].Plate)
	assert.True(t, resp.Stats[0].TotalIn.Equal(qty(5000)))
	assert.True(t, resp.Stats[0].TotalOut.Equal(qty(2000)))
	assert.True(t, resp.Stats[0].Net.Equal(qty(3000)))
	assert.Equal(t, 2, resp.Stats[0].RecordCount)

	// camión sin ficha en flota: estadísticas sin placa
	assert.Equal(t, "CAM-002", resp.Stats[1].TruckCode)
	assert.Empty(t, resp.Stats[1].Plate)
}
