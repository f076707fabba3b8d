package quote

import (
	"estimador/internal/catalog"
	"estimador/internal/rules"
	"estimador/internal/selection"
)

// Line is one billed task in a quote.
type Line struct {
	Task     catalog.Task `json:"task"`
	Quantity int          `json:"quantity"`
	Amount   int64        `json:"amount"`
}

// Breakdown groups the billed tasks the way the summary and the export show them.
type Breakdown struct {
	Essential    []Line `json:"essential"`
	UserSelected []Line `json:"user_selected"`
	FreeIncluded []Line `json:"free_included"`
}

// Selected lists every task that ComputeTotals counts, in catalog order.
func Selected(e rules.Engine, state selection.State) Breakdown {
	var b Breakdown
	for _, t := range e.Catalog.Tasks() {
		qty, ok := billable(e, t, state)
		if !ok {
			continue
		}
		line := Line{Task: t, Quantity: qty, Amount: t.Price * int64(qty)}
		switch t.Category {
		case catalog.CategoryEssential:
			b.Essential = append(b.Essential, line)
		case catalog.CategoryFreeIncluded:
			b.FreeIncluded = append(b.FreeIncluded, line)
		default:
			b.UserSelected = append(b.UserSelected, line)
		}
	}
	return b
}

func (b Breakdown) Lines() []Line {
	out := make([]Line, 0, len(b.Essential)+len(b.UserSelected)+len(b.FreeIncluded))
	out = append(out, b.Essential...)
	out = append(out, b.UserSelected...)
	return append(out, b.FreeIncluded...)
}
