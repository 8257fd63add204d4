package steps

import (
	"context"
	"path"
	"path/filepath"

	"github.com/apex/log"

	create_ctx "github.com/tpexpress/create-tpexpress/cli/create/context"
	"github.com/tpexpress/create-tpexpress/cli/database"
	"github.com/tpexpress/create-tpexpress/cli/templates"
)

// ComposeTemplate writes the base and the database templates to the project
// directory.
type ComposeTemplate struct{}

// Run builds the composition plan and executes it. Files written before a
// failure are left in place.
func (ComposeTemplate) Run(ctx context.Context, createCtx *create_ctx.CreateCtx,
	scaffoldCtx *ScaffoldCtx,
) error {
	manifestName := scaffoldCtx.ProjectName
	if scaffoldCtx.IsCurrentDir {
		manifestName = filepath.Base(scaffoldCtx.TargetPath)
	}

	root := createCtx.TemplatesRoot
	if root == "" {
		root = "."
	}
	plan := &templates.Plan{
		FS:               createCtx.TemplatesFS,
		BaseRoot:         root,
		OverlayRoot:      path.Join(root, scaffoldCtx.Database.ID),
		DestinationRoot:  scaffoldCtx.TargetPath,
		ExcludedDirNames: database.IDs(),
		Substitutions:    []templates.Substitution{templates.ManifestSubstitution(manifestName)},
		SpecialRenames:   templates.DefaultRenames,
	}
	scaffoldCtx.Plan = plan

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := plan.Compose(); err != nil {
		log.Warnf("Project directory %s may be partially populated", scaffoldCtx.TargetPath)
		return err
	}
	return nil
}
