package catalog

import "github.com/e-ogugua/devflow-cli/model"

var builtin = []model.Tool{
	{
		ID:          "create-react-app",
		Name:        "React App Scaffold",
		Description: "Create a modern React TypeScript application with best practices",
		Icon:        "code",
		Category:    model.CategoryScaffolding,
		Command:     "devflow create react-app",
		Status:      model.StatusAvailable,
	},
	{
		ID:          "git-flow",
		Name:        "Git Flow Helper",
		Description: "Initialize git flow branching model and create feature branches",
		Icon:        "git-branch",
		Category:    model.CategoryGit,
		Command:     "devflow git init-flow",
		Status:      model.StatusAvailable,
	},
	{
		ID:          "api-test",
		Name:        "API Test Suite",
		Description: "Generate API tests and mock data for your endpoints",
		Icon:        "zap",
		Category:    model.CategoryTesting,
		Command:     "devflow test api",
		Status:      model.StatusAvailable,
	},
	{
		ID:          "workflow-stats",
		Name:        "Workflow Analytics",
		Description: "Track your development productivity and workflow metrics",
		Icon:        "settings",
		Category:    model.CategoryProductivity,
		Command:     "devflow stats",
		Status:      model.StatusAvailable,
	},
}

// Builtin returns the catalog shipped with the binary.
func Builtin() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic("catalog: invalid builtin catalog: " + err.Error())
	}
	return c
}
