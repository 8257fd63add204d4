package steps

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	create_ctx "github.com/tpexpress/create-tpexpress/cli/create/context"
	"github.com/tpexpress/create-tpexpress/cli/util"
)

// CurrentDirName is the project name selecting the working directory.
const CurrentDirName = "."

var projectNameRe = regexp.MustCompile(`(?i)^[a-z0-9_.-]+$`)

// ValidateProjectName checks the project name contains only letters, digits,
// hyphens, underscores and dots.
func ValidateProjectName(name string) error {
	if name == CurrentDirName {
		return nil
	}
	if name == "" {
		return fmt.Errorf("%w: project name cannot be empty", util.ErrValidation)
	}
	if !projectNameRe.MatchString(name) {
		return fmt.Errorf("%w: invalid project name %q: use only letters, numbers, "+
			"hyphens, underscores and dots", util.ErrValidation, name)
	}
	return nil
}

// ResolveProjectName determines the project name.
type ResolveProjectName struct {
	Prompter Prompter
}

// Run takes the name from the command line or asks the user for it. The
// answer may also come from piped input.
func (step ResolveProjectName) Run(ctx context.Context, createCtx *create_ctx.CreateCtx,
	scaffoldCtx *ScaffoldCtx,
) error {
	name := strings.TrimSpace(createCtx.ProjectName)
	if name == "" && step.Prompter != nil {
		var err error
		if name, err = step.Prompter.AskProjectName(ctx, createCtx.DefaultProjectName); err != nil {
			return err
		}
		name = strings.TrimSpace(name)
	}
	if name == "" {
		name = createCtx.DefaultProjectName
	}

	if err := ValidateProjectName(name); err != nil {
		return err
	}

	scaffoldCtx.ProjectName = name
	scaffoldCtx.IsCurrentDir = name == CurrentDirName
	return nil
}
