package selection

import "estimador/internal/catalog"

// Toggle flips the enabled flag of id and applies the side effects of the flip:
//   - enabling a quantity task restores its quantity, or 1 when it was 0
//   - enabling clears every exclusive partner
//   - disabling zeroes the quantity and clears dependents left without any
//     active prerequisite
//
// The cascade is single level: dependents of a cleared dependent are not revisited.
// Unknown ids and summary-only tasks are no-ops.
func Toggle(cat *catalog.Catalog, state State, id string) State {
	t, ok := cat.Task(id)
	if !ok || t.Mode == catalog.ModeSummaryOnly {
		return state
	}

	next := state.Clone()
	if next == nil {
		next = State{}
	}
	prev := state[id]

	if !prev.Enabled {
		sel := Selection{Enabled: true}
		if t.Mode == catalog.ModeQuantity {
			sel.Quantity = max(prev.Quantity, 1)
		}
		next[id] = sel

		for _, other := range cat.ExclusivePartners(id) {
			next[other] = rest
		}
		return next
	}

	next[id] = rest
	for _, depID := range cat.Dependents(id) {
		dep, ok := cat.Task(depID)
		if !ok {
			continue
		}
		if !anyPrerequisiteActive(cat, next, dep, id) {
			next[depID] = rest
		}
	}
	return next
}

// SetQuantity stores quantity (clamped to 0..MaxQuantity) and derives enabled from it. Unlike
// Toggle it neither clears exclusive partners nor cascades to dependents.
func SetQuantity(cat *catalog.Catalog, state State, id string, quantity int) State {
	t, ok := cat.Task(id)
	if !ok || t.Mode == catalog.ModeSummaryOnly {
		return state
	}

	next := state.Clone()
	if next == nil {
		next = State{}
	}
	quantity = clampQuantity(quantity)
	next[id] = Selection{Enabled: quantity > 0, Quantity: quantity}
	return next
}

func anyPrerequisiteActive(cat *catalog.Catalog, state State, dep catalog.Task, disabled string) bool {
	for _, pre := range dep.VisibleWhen {
		if pre == disabled {
			continue
		}
		if IsActiveID(cat, state, pre) {
			return true
		}
	}
	return false
}
