package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tpexpress/create-tpexpress/cli/cmdcontext"
	"github.com/tpexpress/create-tpexpress/cli/create"
	create_ctx "github.com/tpexpress/create-tpexpress/cli/create/context"
	"github.com/tpexpress/create-tpexpress/cli/database"
	"github.com/tpexpress/create-tpexpress/cli/util"
)

var (
	databaseID     string
	templatesDir   string
	packageManager string
	skipInstall    bool
	quietInstall   bool
	assumeYes      bool
)

// NewCreateCmd creates a project from the templates.
func NewCreateCmd() *cobra.Command {
	var createCmd = &cobra.Command{
		Use:   "create-tpexpress [PROJECT_NAME] [flags]",
		Short: "Create an Express + TypeScript project",
		Long: fmt.Sprintf(`Create an Express + TypeScript project with a database layer.

The project is created in the PROJECT_NAME directory. Use "." to create the
project in the current directory. The project name and the database are asked
interactively if they are not specified.

Supported databases: %s`, strings.Join(database.IDs(), ", ")),
		Example: `
# Create my-app project choosing the database interactively.

    $ create-tpexpress my-app

# Create a project with Prisma in the current directory.

    $ create-tpexpress . --database prisma --yes

# Create a project without installing dependencies.

    $ create-tpexpress shop-api -d postgres --skip-install`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalCreateModule(cmd.Context(), &cmdCtx, args)
			util.HandleCmdErr(cmd, err)
		},
		ValidArgsFunction: cobra.NoFileCompletions,
	}

	createCmd.Flags().StringVarP(&databaseID, "database", "d", "",
		"Database to use: "+strings.Join(database.IDs(), ", "))
	createCmd.Flags().StringVar(&templatesDir, "templates", "",
		"Path to a templates directory to use instead of the built-in templates")
	createCmd.Flags().StringVar(&packageManager, "package-manager", "",
		"Package manager used to install dependencies (default from config: npm)")
	createCmd.Flags().BoolVar(&skipInstall, "skip-install", false,
		"Do not install dependencies")
	createCmd.Flags().BoolVarP(&quietInstall, "quiet", "q", false,
		"Hide package manager output unless installation fails")
	createCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false,
		"Answer yes to confirmation questions")

	createCmd.RegisterFlagCompletionFunc("database", databaseCompletion)

	return createCmd
}

// databaseCompletion returns supported databases for the --database flag.
func databaseCompletion(_ *cobra.Command, _ []string,
	_ string,
) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, db := range database.Supported() {
		completions = append(completions, fmt.Sprintf("%s\t%s", db.ID, db.Label))
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// internalCreateModule is a default create module.
func internalCreateModule(ctx context.Context, cmdCtx *cmdcontext.CmdCtx,
	args []string,
) error {
	opts := *cliOpts
	if templatesDir != "" {
		opts.TemplatesDir = templatesDir
	}

	createCtx := create_ctx.CreateCtx{
		Database:       databaseID,
		PackageManager: packageManager,
		SkipInstall:    skipInstall,
		QuietInstall:   quietInstall,
		AssumeYes:      assumeYes,
	}
	if err := create.FillCtx(&opts, &createCtx, args); err != nil {
		return err
	}

	return create.Run(ctx, &createCtx)
}
