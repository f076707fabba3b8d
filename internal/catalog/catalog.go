package catalog

import "slices"

type Category string

const (
	CategoryEssential    Category = "Esencial"
	CategoryMain         Category = "Principal"
	CategoryContent      Category = "Contenido"
	CategoryFeatures     Category = "Funcionalidades"
	CategorySupport      Category = "Soporte y seguridad"
	CategoryFreeIncluded Category = "Incluido gratis"
)

// EditableCategories returns the categories shown in the task selector, in display order.
func EditableCategories() []Category {
	return []Category{CategoryMain, CategoryContent, CategoryFeatures, CategorySupport}
}

// Categories returns every category in summary order.
func Categories() []Category {
	return []Category{CategoryEssential, CategoryMain, CategoryContent, CategoryFeatures, CategorySupport, CategoryFreeIncluded}
}

// AlwaysIncluded reports whether tasks of the category bypass the eligibility gate.
func (c Category) AlwaysIncluded() bool {
	return c == CategoryEssential || c == CategoryFreeIncluded
}

type Mode string

const (
	ModeToggle      Mode = "toggle"
	ModeQuantity    Mode = "quantity"
	ModeSummaryOnly Mode = "summary_only"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeToggle, ModeQuantity, ModeSummaryOnly:
		return true
	default:
		return false
	}
}

// Upper bounds for a single task. With MaxQuantity applied to every selection,
// they keep catalog totals far inside int64.
const (
	MaxQuantity = 99
	MaxPrice    = 1_000_000_000_000
	MaxHours    = 100_000
)

type Task struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Price       int64    `yaml:"price" json:"price"`
	Hours       float64  `yaml:"hours" json:"hours"`
	Category    Category `yaml:"category" json:"category"`
	Mode        Mode     `yaml:"mode" json:"mode"`

	DefaultQuantity int `yaml:"default_quantity,omitempty" json:"default_quantity,omitempty"`

	// VisibleWhen is OR-combined: one active prerequisite is enough.
	VisibleWhen           []string `yaml:"visible_when,omitempty" json:"visible_when,omitempty"`
	MutuallyExclusiveWith string   `yaml:"mutually_exclusive_with,omitempty" json:"mutually_exclusive_with,omitempty"`
}

func (t Task) DependsOn(id string) bool {
	return slices.Contains(t.VisibleWhen, id)
}

// Catalog is an immutable, ordered task table with lookup indexes built once.
type Catalog struct {
	tasks      []Task
	index      map[string]int
	dependents map[string][]string
	exclusive  map[string][]string
}

// New builds a catalog from tasks, keeping their order. Later duplicates of an id
// are unreachable through Task; Validate reports them.
func New(tasks []Task) *Catalog {
	c := &Catalog{
		tasks:      make([]Task, len(tasks)),
		index:      make(map[string]int, len(tasks)),
		dependents: map[string][]string{},
		exclusive:  map[string][]string{},
	}
	for i, t := range tasks {
		t.VisibleWhen = slices.Clone(t.VisibleWhen)
		c.tasks[i] = t
		if _, dup := c.index[t.ID]; !dup {
			c.index[t.ID] = i
		}
	}

	for _, t := range c.tasks {
		for _, pre := range t.VisibleWhen {
			if !slices.Contains(c.dependents[pre], t.ID) {
				c.dependents[pre] = append(c.dependents[pre], t.ID)
			}
		}
		if other := t.MutuallyExclusiveWith; other != "" && other != t.ID {
			c.addExclusive(t.ID, other)
			c.addExclusive(other, t.ID)
		}
	}
	return c
}

func (c *Catalog) addExclusive(a, b string) {
	if !slices.Contains(c.exclusive[a], b) {
		c.exclusive[a] = append(c.exclusive[a], b)
	}
}

// Tasks returns a copy of the task table in catalog order.
func (c *Catalog) Tasks() []Task {
	return slices.Clone(c.tasks)
}

func (c *Catalog) Len() int { return len(c.tasks) }

func (c *Catalog) Task(id string) (Task, bool) {
	i, ok := c.index[id]
	if !ok {
		return Task{}, false
	}
	return c.tasks[i], true
}

func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Position returns the catalog order of id, or -1.
func (c *Catalog) Position(id string) int {
	i, ok := c.index[id]
	if !ok {
		return -1
	}
	return i
}

// Dependents returns the ids of tasks whose VisibleWhen names id, in catalog order.
func (c *Catalog) Dependents(id string) []string {
	return slices.Clone(c.dependents[id])
}

// ExclusivePartners returns every task excluded by id, whichever side declared the pair.
func (c *Catalog) ExclusivePartners(id string) []string {
	return slices.Clone(c.exclusive[id])
}

func (c *Catalog) InCategory(cat Category) []Task {
	var out []Task
	for _, t := range c.tasks {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}
