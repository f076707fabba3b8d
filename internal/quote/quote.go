// Package quote turns a selection into money, hours and calendar dates.
package quote

import (
	"time"

	"estimador/internal/rules"
	"estimador/internal/selection"
)

// Quote is a read-only snapshot of one estimate. Export and the web shell render it;
// nothing writes back through it.
type Quote struct {
	State     selection.State `json:"-"`
	Totals    Totals          `json:"totals"`
	Range     DateRange       `json:"range"`
	Days      int             `json:"business_days"`
	Breakdown Breakdown       `json:"breakdown"`
}

func Build(e rules.Engine, state selection.State, start time.Time) Quote {
	totals := ComputeTotals(e, state)
	return Quote{
		State:     state.Clone(),
		Totals:    totals,
		Range:     RangeFor(start, totals.Hours),
		Days:      BusinessDaysFor(totals.Hours),
		Breakdown: Selected(e, state),
	}
}

func (q Quote) Price() string    { return FormatPrice(q.Totals.Price) }
func (q Quote) Duration() string { return FormatDuration(q.Totals.Hours) }
