package rules

import (
	"fmt"
	"strings"

	"estimador/internal/catalog"
	"estimador/internal/selection"
)

// Policy decides what the task selector does with ineligible tasks.
type Policy string

const (
	PolicyHide         Policy = "hide"
	PolicyShowDisabled Policy = "disable"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyHide:
		return PolicyHide, nil
	case PolicyShowDisabled, "show_disabled":
		return PolicyShowDisabled, nil
	default:
		return "", fmt.Errorf("unknown visibility policy: %q", s)
	}
}

type Engine struct {
	Catalog *catalog.Catalog
	Policy  Policy
}

func New(cat *catalog.Catalog, policy Policy) Engine {
	if policy == "" {
		policy = PolicyHide
	}
	return Engine{Catalog: cat, Policy: policy}
}

// Item is one row of the task selector.
type Item struct {
	Task     catalog.Task `json:"task"`
	Disabled bool         `json:"disabled"`
}

type Section struct {
	Category catalog.Category `json:"category"`
	Items    []Item           `json:"items"`
}

// IsEligible reports whether task may contribute to a quote: at least one of its
// prerequisites is active (when it has any) and none of its exclusive partners is.
func (e Engine) IsEligible(t catalog.Task, state selection.State) bool {
	if len(t.VisibleWhen) > 0 && !e.anyActive(t.VisibleWhen, state) {
		return false
	}
	return !e.excluded(t, state)
}

func (e Engine) anyActive(ids []string, state selection.State) bool {
	for _, id := range ids {
		if selection.IsActiveID(e.Catalog, state, id) {
			return true
		}
	}
	return false
}

func (e Engine) excluded(t catalog.Task, state selection.State) bool {
	return e.anyActive(e.Catalog.ExclusivePartners(t.ID), state)
}

// VisibleForCategory lists the editable tasks of cat in selector order: every task
// without prerequisites in catalog order, each immediately followed by the tasks of
// the same category that name it in VisibleWhen. A dependent with several
// prerequisites is listed once, after the first one reached.
//
// A parent is disabled while an exclusive partner is active. A dependent is
// disabled while none of its prerequisites is; its own exclusions only matter to
// PolicyHide, which drops every ineligible task.
func (e Engine) VisibleForCategory(cat catalog.Category, state selection.State) []Item {
	var tasks []catalog.Task
	for _, t := range e.Catalog.InCategory(cat) {
		if t.Mode != catalog.ModeSummaryOnly {
			tasks = append(tasks, t)
		}
	}

	out := make([]Item, 0, len(tasks))
	emitted := map[string]bool{}

	for _, parent := range tasks {
		if len(parent.VisibleWhen) > 0 {
			continue
		}

		disabled := e.excluded(parent, state)
		if disabled && e.Policy == PolicyHide {
			continue
		}
		out = append(out, Item{Task: parent, Disabled: disabled})
		emitted[parent.ID] = true

		for _, dep := range tasks {
			if emitted[dep.ID] || !dep.DependsOn(parent.ID) {
				continue
			}
			if e.Policy == PolicyHide && !e.IsEligible(dep, state) {
				continue
			}
			out = append(out, Item{Task: dep, Disabled: !e.anyActive(dep.VisibleWhen, state)})
			emitted[dep.ID] = true
		}
	}
	return out
}

// Sections returns the non-empty editable categories in display order.
func (e Engine) Sections(state selection.State) []Section {
	var out []Section
	for _, cat := range catalog.EditableCategories() {
		items := e.VisibleForCategory(cat, state)
		if len(items) == 0 {
			continue
		}
		out = append(out, Section{Category: cat, Items: items})
	}
	return out
}
