package inventory

import (
	"sort"
	"time"

	"github.com/petrocontrol/petrocontrol-api/internal/domain/entity"
)

// DailySnapshot es el balance acumulado al cierre de un día calendario.
type DailySnapshot struct {
	Day      time.Time // truncado a medianoche, zona del llamador
	Balances Balance
}

// ComputeDailyHistory reconstruye el balance día a día en [windowStart,
// windowEnd] inclusive, con semántica de arrastre: un día sin registros
// repite el snapshot del día anterior; un día sin registros previos
// snapshottea el balance vacío.
//
// Un solo acumulador mutable recorre el ledger ordenado y se clona
// únicamente en el corte de cada día (O(n log n) + O(días)), en lugar de
// re-agregar el ledger completo por día.
//
// windowStart > windowEnd devuelve nil. El orden se resuelve por fecha
// efectiva del movimiento, con desempate por ID para que el resultado sea
// reproducible.
func ComputeDailyHistory(movements []*entity.FuelMovement, windowStart, windowEnd time.Time) []DailySnapshot {
	start := truncateDay(windowStart)
	end := truncateDay(windowEnd)
	if start.After(end) {
		return nil
	}

	sorted := make([]*entity.FuelMovement, len(movements))
	copy(sorted, movements)
	sort.Slice(sorted, func(i, j int) bool {
		di, dj := sorted[i].EffectiveDate(), sorted[j].EffectiveDate()
		if di.Equal(dj) {
			return sorted[i].ID < sorted[j].ID
		}
		return di.Before(dj)
	})

	days := int(end.Sub(start).Hours()/24) + 1
	history := make([]DailySnapshot, 0, days)

	running := make(Balance)
	next := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		cutoff := day.AddDate(0, 0, 1) // primer instante del día siguiente
		for next < len(sorted) && sorted[next].EffectiveDate().Before(cutoff) {
			apply(running, sorted[next])
			next++
		}
		history = append(history, DailySnapshot{Day: day, Balances: running.Clone()})
	}
	return history
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
