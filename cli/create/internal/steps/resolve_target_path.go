package steps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	create_ctx "github.com/tpexpress/create-tpexpress/cli/create/context"
	"github.com/tpexpress/create-tpexpress/cli/util"
)

// ignoredEntries may be present in a directory considered empty.
var ignoredEntries = map[string]bool{
	"node_modules": true,
	"README.md":    true,
	"LICENSE":      true,
}

// IsDirEmptyEnough returns true if the directory has nothing but hidden
// entries, node_modules, README.md and LICENSE.
func IsDirEmptyEnough(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || ignoredEntries[name] {
			continue
		}
		return false, nil
	}
	return true, nil
}

// ResolveTargetPath determines and prepares the project directory.
type ResolveTargetPath struct {
	Prompter Prompter
}

// Run creates the project directory. The working directory is used if it is
// empty enough or the user agrees to mix its contents with the template.
func (step ResolveTargetPath) Run(ctx context.Context, createCtx *create_ctx.CreateCtx,
	scaffoldCtx *ScaffoldCtx,
) error {
	if scaffoldCtx.IsCurrentDir {
		if err := step.confirmCurrentDir(ctx, createCtx); err != nil {
			return err
		}
		scaffoldCtx.TargetPath = createCtx.WorkDir
		return nil
	}

	targetPath := filepath.Join(createCtx.WorkDir, scaffoldCtx.ProjectName)
	if util.Exists(targetPath) {
		return fmt.Errorf("%w: %s", util.ErrConflict, targetPath)
	}
	if err := os.MkdirAll(targetPath, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory %s: %w", targetPath, err)
	}

	log.Debugf("Project directory: %s", targetPath)
	scaffoldCtx.TargetPath = targetPath
	return nil
}

func (step ResolveTargetPath) confirmCurrentDir(ctx context.Context,
	createCtx *create_ctx.CreateCtx,
) error {
	empty, err := IsDirEmptyEnough(createCtx.WorkDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", createCtx.WorkDir, err)
	}
	if empty {
		return nil
	}

	log.Warnf("Current directory %q is not empty!", filepath.Base(createCtx.WorkDir))
	log.Warn("Contents will be mixed with template files.")
	if createCtx.AssumeYes {
		return nil
	}
	if step.Prompter == nil {
		return fmt.Errorf("%w: %s is not empty, use --yes to continue",
			util.ErrConflict, createCtx.WorkDir)
	}

	confirmed, err := step.Prompter.Confirm(ctx, "Continue anyway")
	if err != nil {
		return err
	}
	if !confirmed {
		return util.ErrCmdAbort
	}
	return nil
}
