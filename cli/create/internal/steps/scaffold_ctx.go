package steps

import (
	"github.com/tpexpress/create-tpexpress/cli/database"
	"github.com/tpexpress/create-tpexpress/cli/templates"
)

// ScaffoldCtx is the state built up by the create steps.
type ScaffoldCtx struct {
	// ProjectName is the resolved and validated project name.
	ProjectName string
	// IsCurrentDir is set if the project is created in the working directory.
	IsCurrentDir bool
	// Database is the chosen database.
	Database database.Database
	// TargetPath is the project directory.
	TargetPath string
	// Plan is the template composition plan.
	Plan *templates.Plan
	// DependenciesInstalled is set if the package manager succeeded.
	DependenciesInstalled bool
}
