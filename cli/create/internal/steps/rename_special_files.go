package steps

import (
	"context"

	create_ctx "github.com/tpexpress/create-tpexpress/cli/create/context"
	"github.com/tpexpress/create-tpexpress/cli/templates"
)

// RenameSpecialFiles gives dot names to files stored under neutral names in
// templates.
type RenameSpecialFiles struct{}

// Run applies the plan renames to the project directory.
func (RenameSpecialFiles) Run(ctx context.Context, createCtx *create_ctx.CreateCtx,
	scaffoldCtx *ScaffoldCtx,
) error {
	renames := templates.DefaultRenames
	if scaffoldCtx.Plan != nil {
		renames = scaffoldCtx.Plan.SpecialRenames
	}
	return templates.ApplyRenames(scaffoldCtx.TargetPath, renames)
}
