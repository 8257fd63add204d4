package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tpexpress/create-tpexpress/cli/database"
	"github.com/tpexpress/create-tpexpress/cli/templates"
	"github.com/tpexpress/create-tpexpress/cli/util"
)

// NewPrepareCmd creates a command preparing a templates directory for
// packaging.
func NewPrepareCmd() *cobra.Command {
	var prepareCmd = &cobra.Command{
		Use:   "prepare <TEMPLATES_DIR>",
		Short: "Prepare a templates directory for packaging",
		Long: `Prepare a templates directory for packaging.

Dotfiles are lost when templates are packaged, so .env and .gitignore in each
database template are renamed to env.template and gitignore.template. The
names are restored when a project is created.`,
		Example: `
# Prepare templates before building.

    $ create-tpexpress prepare ./templates`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := templates.PrepareForPublish(args[0], database.IDs(),
				templates.DefaultRenames)
			util.HandleCmdErr(cmd, err)
		},
	}

	return prepareCmd
}
