package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/e-ogugua/devflow-cli/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinIDsUnique(t *testing.T) {
	c := Builtin()
	require.Greater(t, c.Len(), 0)

	seen := map[string]bool{}
	for _, tool := range c.All() {
		assert.False(t, seen[tool.ID], "duplicate id %s", tool.ID)
		seen[tool.ID] = true
		assert.Equal(t, model.StatusAvailable, tool.Status)
	}
}

func TestLookup(t *testing.T) {
	c := Builtin()

	tool, err := c.Lookup("git-flow")
	require.NoError(t, err)
	assert.Equal(t, "Git Flow Helper", tool.Name)
	assert.Equal(t, "devflow git init-flow", tool.Command)

	_, err = c.Lookup("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestByCategory(t *testing.T) {
	c := Builtin()
	for _, cat := range model.Categories {
		tools := c.ByCategory(cat)
		require.Len(t, tools, 1, cat)
		assert.Equal(t, cat, tools[0].Category)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := Builtin()
	all := c.All()
	all[0].Name = "changed"
	assert.NotEqual(t, "changed", c.All()[0].Name)
}

func TestValidate(t *testing.T) {
	ok := model.Tool{ID: "a", Name: "A", Command: "devflow a", Category: model.CategoryGit}

	tests := []struct {
		name  string
		tools []model.Tool
		want  error
	}{
		{"empty", nil, ErrEmpty},
		{"duplicate", []model.Tool{ok, ok}, ErrDuplicateID},
		{"no id", []model.Tool{{Name: "A", Command: "x", Category: model.CategoryGit}}, ErrInvalidTool},
		{"no command", []model.Tool{{ID: "a", Name: "A", Category: model.CategoryGit}}, ErrInvalidTool},
		{"bad category", []model.Tool{{ID: "a", Name: "A", Command: "x", Category: "deploy"}}, ErrInvalidTool},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(tt.tools), tt.want)
		})
	}

	assert.NoError(t, Validate([]model.Tool{ok}))
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFormats(t *testing.T) {
	files := map[string]string{
		"tools.yaml": `
tools:
  - id: lint
    name: Linter
    category: testing
    command: devflow lint
`,
		"tools.toml": `
[[tools]]
id = "lint"
name = "Linter"
category = "testing"
command = "devflow lint"
`,
		"tools.json": `{"tools":[{"id":"lint","name":"Linter","category":"testing","command":"devflow lint"}]}`,
	}

	for name, body := range files {
		t.Run(name, func(t *testing.T) {
			c, err := Load(writeFile(t, name, body))
			require.NoError(t, err)
			tool, err := c.Lookup("lint")
			require.NoError(t, err)
			assert.Equal(t, "Linter", tool.Name)
			assert.Equal(t, model.CategoryTesting, tool.Category)
			assert.Equal(t, model.StatusAvailable, tool.Status)
		})
	}
}

func TestLoadRejectsDuplicates(t *testing.T) {
	path := writeFile(t, "tools.yaml", `
tools:
  - {id: a, name: A, category: git, command: x}
  - {id: a, name: B, category: git, command: y}
`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load(writeFile(t, "tools.ini", "x"))
	assert.Error(t, err)
}

func TestOpenDefaultsToBuiltin(t *testing.T) {
	c, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, Builtin().All(), c.All())
}
