// Package create scaffolds a new project from templates.
package create

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/mattn/go-isatty"

	"github.com/tpexpress/create-tpexpress/cli/config"
	"github.com/tpexpress/create-tpexpress/cli/create/builtin_templates"
	create_ctx "github.com/tpexpress/create-tpexpress/cli/create/context"
	"github.com/tpexpress/create-tpexpress/cli/create/internal/steps"
	"github.com/tpexpress/create-tpexpress/cli/util"
	"github.com/tpexpress/create-tpexpress/cli/version"
)

// FillCtx fills create context from the configuration and arguments.
func FillCtx(cliOpts *config.CliOpts, createCtx *create_ctx.CreateCtx, args []string) error {
	if len(args) > 1 {
		return util.NewArgError(fmt.Sprintf("only one project name is allowed, got %d", len(args)))
	}
	if len(args) == 1 {
		createCtx.ProjectName = args[0]
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	createCtx.WorkDir = workingDir

	if cliOpts.TemplatesDir != "" {
		if !util.IsDir(cliOpts.TemplatesDir) {
			return fmt.Errorf("%w: templates directory %s is not found",
				util.ErrConfiguration, cliOpts.TemplatesDir)
		}
		createCtx.TemplatesFS = os.DirFS(cliOpts.TemplatesDir)
		createCtx.TemplatesRoot = "."
	} else {
		createCtx.TemplatesFS = builtin_templates.FS()
		createCtx.TemplatesRoot = builtin_templates.Root
	}

	createCtx.DefaultProjectName = cliOpts.DefaultName
	if createCtx.PackageManager == "" {
		createCtx.PackageManager = cliOpts.PackageManager
	}
	if cliOpts.Node != nil {
		createCtx.NodeCommand = cliOpts.Node.Command
		createCtx.NodeMinVersion = cliOpts.Node.MinVersion
	}
	createCtx.Interactive = isatty.IsTerminal(os.Stdin.Fd()) ||
		isatty.IsCygwinTerminal(os.Stdin.Fd())

	return nil
}

// collaborators are the parts of the create chain talking to the outside world.
type collaborators struct {
	prompter steps.Prompter
	chooser  steps.DatabaseChooser
	// runner is nil for the console, the install step chooses between the
	// verbose and the quiet runner itself.
	runner  steps.CommandRunner
	runtime steps.CheckRuntime
	out     io.Writer
}

func consoleCollaborators() collaborators {
	return collaborators{
		prompter: steps.NewConsolePrompter(os.Stdin),
		chooser:  steps.NewMenuChooser(os.Stdin, os.Stdout),
		out:      os.Stdout,
	}
}

// Run creates a project. Stdin and stdout are used for user interaction.
func Run(ctx context.Context, createCtx *create_ctx.CreateCtx) error {
	return run(ctx, createCtx, consoleCollaborators())
}

func run(ctx context.Context, createCtx *create_ctx.CreateCtx, c collaborators) error {
	if err := checkCtx(createCtx); err != nil {
		return util.InternalError("Create context check failed: %s", version.GetVersion, err)
	}

	stepsChain := []steps.Step{
		steps.PrintBanner{Writer: c.out},
		c.runtime,
		steps.ResolveProjectName{Prompter: c.prompter},
		steps.ChooseDatabase{Chooser: c.chooser},
		steps.ResolveTargetPath{Prompter: c.prompter},
		steps.ComposeTemplate{},
		steps.RenameSpecialFiles{},
		steps.InstallDependencies{Runner: c.runner},
		steps.PrintFollowUpMessage{Writer: c.out},
	}

	var scaffoldCtx steps.ScaffoldCtx
	for _, step := range stepsChain {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %s", util.ErrCmdAbort, err)
		}
		if err := step.Run(ctx, createCtx, &scaffoldCtx); err != nil {
			return err
		}
	}

	log.Debugf("Project %s is created in %s", scaffoldCtx.ProjectName, scaffoldCtx.TargetPath)
	return nil
}

// checkCtx checks create context for validity.
func checkCtx(ctx *create_ctx.CreateCtx) error {
	if ctx.TemplatesFS == nil {
		return fmt.Errorf("templates are not set")
	}
	if ctx.WorkDir == "" {
		return fmt.Errorf("working directory is not set")
	}
	if ctx.PackageManager == "" {
		return fmt.Errorf("package manager is not set")
	}
	return nil
}
