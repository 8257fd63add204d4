package steps

import (
	"context"
	"fmt"

	"github.com/apex/log"

	create_ctx "github.com/tpexpress/create-tpexpress/cli/create/context"
	"github.com/tpexpress/create-tpexpress/cli/util"
)

// CommandRunner runs program in dir.
type CommandRunner func(ctx context.Context, dir string, program string, args ...string) error

// InstallDependencies runs the package manager in the project directory.
type InstallDependencies struct {
	Runner CommandRunner
}

// Run installs project dependencies. Installation failure is not fatal, the
// user is told how to install dependencies manually.
func (step InstallDependencies) Run(ctx context.Context, createCtx *create_ctx.CreateCtx,
	scaffoldCtx *ScaffoldCtx,
) error {
	if createCtx.SkipInstall {
		log.Debugf("Dependencies installation is skipped")
		return nil
	}

	runner := step.Runner
	if runner == nil {
		runner = util.ExecuteCommandContext
		if createCtx.QuietInstall {
			runner = util.ExecuteQuietCommandContext
		}
	}

	log.Infof("Installing dependencies...")
	err := runner(ctx, scaffoldCtx.TargetPath, createCtx.PackageManager, "install")
	if ctx.Err() != nil {
		return fmt.Errorf("dependencies installation interrupted: %w", util.ErrCmdAbort)
	}
	if err != nil {
		log.Warnf("Failed to install dependencies: %s", err)
		log.Warnf("You can install them manually by running: %s install",
			createCtx.PackageManager)
		return nil
	}

	scaffoldCtx.DependenciesInstalled = true
	return nil
}
