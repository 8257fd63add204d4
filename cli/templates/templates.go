// Package templates composes a project directory from a base template and a
// database overlay template.
package templates

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/apex/log"

	"github.com/tpexpress/create-tpexpress/cli/util"
)

const (
	defaultDirPerms  = os.FileMode(0o755)
	defaultFilePerms = os.FileMode(0o644)
	execFilePerms    = os.FileMode(0o755)
)

// Plan describes how a project tree is composed.
type Plan struct {
	// FS holds template trees. Roots below are slash separated paths in FS.
	FS fs.FS
	// BaseRoot is the template shared by all projects.
	BaseRoot string
	// OverlayRoot is the database specific template copied over the base one.
	OverlayRoot string
	// DestinationRoot is a directory on disk the project is written to.
	DestinationRoot string
	// ExcludedDirNames are skipped among the direct children of BaseRoot.
	// It holds names of all overlay directories.
	ExcludedDirNames []string
	// Substitutions are applied to copied files.
	Substitutions []Substitution
	// SpecialRenames are applied to DestinationRoot after composing.
	SpecialRenames []Rename
}

// Compose copies the base template and then the overlay template to the
// destination. Overlay files replace base files with the same relative path.
func (plan *Plan) Compose() error {
	overlayInfo, err := fs.Stat(plan.FS, plan.OverlayRoot)
	if err != nil || !overlayInfo.IsDir() {
		return fmt.Errorf("%w: template directory %q is not found",
			util.ErrConfiguration, plan.OverlayRoot)
	}

	log.Infof("Copying core template files...")
	if err := plan.Copy(plan.BaseRoot, plan.DestinationRoot); err != nil {
		return fmt.Errorf("failed to copy core template: %w", err)
	}

	log.Infof("Copying %s template files...", path.Base(plan.OverlayRoot))
	if err := plan.Copy(plan.OverlayRoot, plan.DestinationRoot); err != nil {
		return fmt.Errorf("failed to copy %s template: %w", path.Base(plan.OverlayRoot), err)
	}

	return nil
}

// Copy recursively merges sourceRoot into destinationRoot. Existing
// destination files are overwritten.
func (plan *Plan) Copy(sourceRoot, destinationRoot string) error {
	entries, err := fs.ReadDir(plan.FS, sourceRoot)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := path.Join(sourceRoot, entry.Name())
		dstPath := filepath.Join(destinationRoot, entry.Name())

		if entry.IsDir() {
			if sourceRoot == plan.BaseRoot && slices.Contains(plan.ExcludedDirNames, entry.Name()) {
				log.Debugf("Skipping %s", srcPath)
				continue
			}
			if err := os.MkdirAll(dstPath, defaultDirPerms); err != nil {
				return err
			}
			if err := plan.Copy(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		if err := plan.copyFile(srcPath, dstPath, entry); err != nil {
			return err
		}
	}

	return nil
}

func (plan *Plan) copyFile(srcPath, dstPath string, entry fs.DirEntry) error {
	content, err := fs.ReadFile(plan.FS, srcPath)
	if err != nil {
		return err
	}

	for _, substitution := range plan.Substitutions {
		if substitution.Matches(entry.Name()) {
			content = substitution.Apply(content)
		}
	}

	perms := defaultFilePerms
	if info, err := entry.Info(); err == nil && info.Mode().Perm()&0o111 != 0 {
		perms = execFilePerms
	}

	log.Debugf("Writing %s", dstPath)
	return os.WriteFile(dstPath, content, perms)
}
