package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCatalog     = errors.New("catalog has no tasks")
	ErrDuplicateID      = errors.New("duplicate task id")
	ErrUnknownReference = errors.New("reference to unknown task id")
	ErrDependencyCycle  = errors.New("visible_when dependencies form a cycle")
	ErrOutOfRange       = errors.New("value out of range")
)

type file struct {
	Tasks []Task `yaml:"tasks"`
}

// LoadFile reads a YAML catalog source and validates it.
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func Parse(b []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	c := New(f.Tasks)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MarshalYAML dumps the catalog in the same shape Parse reads.
func (c *Catalog) MarshalYAML() (any, error) {
	return file{Tasks: c.Tasks()}, nil
}

func (c *Catalog) Validate() error {
	if len(c.tasks) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(c.tasks))
	for _, t := range c.tasks {
		if t.ID == "" {
			return fmt.Errorf("task %q: id is required", t.Name)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
		}
		seen[t.ID] = true

		if !t.Mode.Valid() {
			return fmt.Errorf("task %s: unknown mode %q", t.ID, t.Mode)
		}
		if t.Price < 0 || t.Hours < 0 || t.DefaultQuantity < 0 {
			return fmt.Errorf("task %s: price, hours and default_quantity must be >= 0", t.ID)
		}
		if t.Price > MaxPrice || t.Hours > MaxHours || t.DefaultQuantity > MaxQuantity {
			return fmt.Errorf("%w: task %s exceeds price %d, hours %d or default_quantity %d",
				ErrOutOfRange, t.ID, int64(MaxPrice), int(MaxHours), MaxQuantity)
		}
	}

	for _, t := range c.tasks {
		for _, pre := range t.VisibleWhen {
			if !seen[pre] {
				return fmt.Errorf("%w: %s visible_when %s", ErrUnknownReference, t.ID, pre)
			}
		}
		if ex := t.MutuallyExclusiveWith; ex != "" && !seen[ex] {
			return fmt.Errorf("%w: %s mutually_exclusive_with %s", ErrUnknownReference, t.ID, ex)
		}
	}

	return c.checkAcyclic()
}

func (c *Catalog) checkAcyclic() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(c.tasks))

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("%w at %s", ErrDependencyCycle, id)
		case done:
			return nil
		}
		state[id] = visiting
		t, _ := c.Task(id)
		for _, pre := range t.VisibleWhen {
			if err := visit(pre); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	for _, t := range c.tasks {
		if err := visit(t.ID); err != nil {
			return err
		}
	}
	return nil
}
