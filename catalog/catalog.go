// Package catalog holds the fixed list of tools shown on the dashboard.
package catalog

import (
	"errors"
	"fmt"

	"github.com/e-ogugua/devflow-cli/model"
)

var (
	ErrEmpty       = errors.New("catalog is empty")
	ErrDuplicateID = errors.New("duplicate tool id")
	ErrInvalidTool = errors.New("invalid tool")
	ErrNotFound    = errors.New("tool not found")
)

// Catalog is read-only once built.
type Catalog struct {
	tools []model.Tool
	byID  map[string]int
}

func New(tools []model.Tool) (*Catalog, error) {
	if err := Validate(tools); err != nil {
		return nil, err
	}
	c := &Catalog{
		tools: make([]model.Tool, len(tools)),
		byID:  make(map[string]int, len(tools)),
	}
	copy(c.tools, tools)
	for i, t := range c.tools {
		c.byID[t.ID] = i
	}
	return c, nil
}

// Validate checks that tools is non-empty, every entry is complete and no
// two entries share an id.
func Validate(tools []model.Tool) error {
	if len(tools) == 0 {
		return ErrEmpty
	}
	seen := make(map[string]bool, len(tools))
	for i, t := range tools {
		switch {
		case t.ID == "":
			return fmt.Errorf("%w: entry %d has no id", ErrInvalidTool, i)
		case t.Name == "":
			return fmt.Errorf("%w: %s has no name", ErrInvalidTool, t.ID)
		case t.Command == "":
			return fmt.Errorf("%w: %s has no command", ErrInvalidTool, t.ID)
		}
		if _, err := model.ParseCategory(string(t.Category)); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTool, t.ID, err)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// All returns the tools in catalog order.
func (c *Catalog) All() []model.Tool {
	out := make([]model.Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

func (c *Catalog) Len() int {
	return len(c.tools)
}

func (c *Catalog) Lookup(id string) (model.Tool, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.Tool{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.tools[i], nil
}

func (c *Catalog) ByCategory(cat model.Category) []model.Tool {
	var out []model.Tool
	for _, t := range c.tools {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}
