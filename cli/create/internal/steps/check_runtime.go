package steps

import (
	"context"
	"fmt"

	"github.com/apex/log"
	goVersion "github.com/hashicorp/go-version"

	create_ctx "github.com/tpexpress/create-tpexpress/cli/create/context"
	"github.com/tpexpress/create-tpexpress/cli/version"
)

// CheckRuntime checks the JavaScript runtime version.
type CheckRuntime struct {
	// GetVersion returns the version of the runtime command.
	GetVersion func(command string) (*goVersion.Version, error)
}

// Run checks the runtime is installed and is new enough. The check is only a
// warning if dependencies are not installed.
func (step CheckRuntime) Run(ctx context.Context, createCtx *create_ctx.CreateCtx,
	scaffoldCtx *ScaffoldCtx,
) error {
	getVersion := step.GetVersion
	if getVersion == nil {
		getVersion = version.GetRuntimeVersion
	}

	err := step.check(createCtx, getVersion)
	if err == nil {
		return nil
	}
	if createCtx.SkipInstall {
		log.Warnf("%s", err)
		return nil
	}
	log.Infof("Please upgrade Node.js: https://nodejs.org/")
	return err
}

func (step CheckRuntime) check(createCtx *create_ctx.CreateCtx,
	getVersion func(string) (*goVersion.Version, error),
) error {
	actual, err := getVersion(createCtx.NodeCommand)
	if err != nil {
		return fmt.Errorf("%s is required: %w", createCtx.NodeCommand, err)
	}
	if err := version.CheckMinVersion(actual, createCtx.NodeMinVersion); err != nil {
		return err
	}
	log.Infof("Node.js v%s - Compatible!", actual)
	return nil
}
