package model

import "fmt"

type Category string

const (
	CategoryScaffolding  Category = "scaffolding"
	CategoryGit          Category = "git"
	CategoryTesting      Category = "testing"
	CategoryProductivity Category = "productivity"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryScaffolding,
	CategoryGit,
	CategoryTesting,
	CategoryProductivity,
}

// ParseCategory returns the category named s.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Status is a display-only field; runs never change it.
type Status string

const (
	StatusAvailable Status = "available"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

type Tool struct {
	ID          string   `json:"id" yaml:"id" toml:"id"`
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Category    Category `json:"category" yaml:"category" toml:"category"`
	Command     string   `json:"command" yaml:"command" toml:"command"` // display only, never executed
	Icon        string   `json:"icon" yaml:"icon" toml:"icon"`
	Status      Status   `json:"status" yaml:"status" toml:"status"`
}
