package quote

import (
	"estimador/internal/catalog"
	"estimador/internal/rules"
	"estimador/internal/selection"
)

type Totals struct {
	Price int64   `json:"total_price"`
	Hours float64 `json:"total_hours"`
}

// ComputeTotals folds the catalog, in order, into price and hours. Outside the
// always-included categories a task only counts while it is eligible, whatever its
// stored selection says.
func ComputeTotals(e rules.Engine, state selection.State) Totals {
	var out Totals
	for _, t := range e.Catalog.Tasks() {
		qty, ok := billable(e, t, state)
		if !ok {
			continue
		}
		out.Price += t.Price * int64(qty)
		out.Hours += t.Hours * float64(qty)
	}
	return out
}

// billable returns the multiplier a task contributes with, if any.
func billable(e rules.Engine, t catalog.Task, state selection.State) (int, bool) {
	sel, ok := state[t.ID]
	if !ok {
		return 0, false
	}
	if !t.Category.AlwaysIncluded() && !e.IsEligible(t, state) {
		return 0, false
	}

	if t.Mode == catalog.ModeQuantity {
		if sel.Quantity > 0 {
			return sel.Quantity, true
		}
		return 0, false
	}
	if sel.Enabled {
		return 1, true
	}
	return 0, false
}
