package selection

import (
	"maps"

	"estimador/internal/catalog"
)

type Selection struct {
	Enabled  bool `json:"enabled"`
	Quantity int  `json:"quantity"`
}

// MaxQuantity bounds every stored quantity, whether it came from a form or a URL.
const MaxQuantity = catalog.MaxQuantity

var rest = Selection{}

func clampQuantity(n int) int {
	return min(max(n, 0), MaxQuantity)
}

func (s Selection) AtRest() bool {
	return !s.Enabled && s.Quantity <= 0
}

// State maps task id to its selection. Values are treated as immutable snapshots:
// transitions return a new State and leave their input untouched.
type State map[string]Selection

func (s State) Clone() State {
	return maps.Clone(s)
}

func Equal(a, b State) bool {
	return maps.Equal(a, b)
}

// Defaults is the selection a fresh session starts from.
func Defaults(cat *catalog.Catalog) State {
	out := make(State, cat.Len())
	for _, t := range cat.Tasks() {
		switch {
		case t.Category == catalog.CategoryEssential:
			out[t.ID] = Selection{Enabled: true, Quantity: 1}
		case t.Mode == catalog.ModeToggle:
			out[t.ID] = rest
		case t.Mode == catalog.ModeQuantity:
			q := max(t.DefaultQuantity, 0)
			out[t.ID] = Selection{Enabled: q > 0, Quantity: q}
		default:
			out[t.ID] = Selection{Enabled: true, Quantity: 1}
		}
	}
	return out
}

// Resting is the base URL decoding fills in before applying fragments. It differs
// from Defaults only for quantity tasks, which start at zero: the encoder omits
// at-rest entries, so a seeded default would resurrect a quantity the user cleared.
func Resting(cat *catalog.Catalog) State {
	out := Defaults(cat)
	for _, t := range cat.Tasks() {
		if t.Mode == catalog.ModeQuantity && t.Category != catalog.CategoryEssential {
			out[t.ID] = rest
		}
	}
	return out
}

// IsActive reports whether task counts as selected under state.
func IsActive(t catalog.Task, state State) bool {
	switch t.Mode {
	case catalog.ModeSummaryOnly:
		return true
	case catalog.ModeQuantity:
		return state[t.ID].Quantity > 0
	default:
		return state[t.ID].Enabled
	}
}

// IsActiveID is IsActive by id; ids outside the catalog are never active.
func IsActiveID(cat *catalog.Catalog, state State, id string) bool {
	t, ok := cat.Task(id)
	if !ok {
		return false
	}
	return IsActive(t, state)
}

// Normalize clamps quantities to 0..MaxQuantity and keeps enabled == (quantity > 0)
// for quantity tasks. Entries for unknown ids are kept, clamped the same way.
func Normalize(cat *catalog.Catalog, state State) State {
	out := state.Clone()
	for id, sel := range out {
		sel.Quantity = clampQuantity(sel.Quantity)
		if t, ok := cat.Task(id); ok && t.Mode == catalog.ModeQuantity {
			sel.Enabled = sel.Quantity > 0
		}
		out[id] = sel
	}
	return out
}
