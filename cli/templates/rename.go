package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/otiai10/copy"

	"github.com/tpexpress/create-tpexpress/cli/util"
)

// Rename is a file rename applied to the generated project.
type Rename struct {
	From string
	To   string
}

// DefaultRenames turns dotfile templates into dotfiles. Dotfiles are kept
// under other names in templates so they survive packaging.
var DefaultRenames = []Rename{
	{From: "gitignore.template", To: ".gitignore"},
	{From: "env.template", To: ".env"},
}

// ApplyRenames renames files in dir in order. Missing source files are skipped.
// If a rename fails, the file is copied and the original is removed.
func ApplyRenames(dir string, renames []Rename) error {
	for _, rename := range renames {
		src := filepath.Join(dir, rename.From)
		dst := filepath.Join(dir, rename.To)
		if !util.IsRegularFile(src) {
			log.Debugf("%s is not found, skipping rename", src)
			continue
		}

		err := os.Rename(src, dst)
		if err == nil {
			continue
		}
		log.Debugf("Rename %s failed: %s, falling back to copy", src, err)

		if err := copy.Copy(src, dst); err != nil {
			return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
		}
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("failed to remove %s: %w", src, err)
		}
	}
	return nil
}

// Reverse returns renames that undo the given ones.
func Reverse(renames []Rename) []Rename {
	reversed := make([]Rename, 0, len(renames))
	for _, rename := range renames {
		reversed = append(reversed, Rename{From: rename.To, To: rename.From})
	}
	return reversed
}

// PrepareForPublish replaces dotfiles with their template names in every
// template directory listed in dirs under root.
func PrepareForPublish(root string, dirs []string, renames []Rename) error {
	reversed := Reverse(renames)
	for _, dir := range dirs {
		templateDir := filepath.Join(root, dir)
		if !util.IsDir(templateDir) {
			return fmt.Errorf("%w: template directory %q is not found",
				util.ErrConfiguration, templateDir)
		}
		for _, rename := range reversed {
			if !util.IsRegularFile(filepath.Join(templateDir, rename.From)) {
				log.Warnf("%s not found in %s, skipping.", rename.From, templateDir)
			}
		}
		if err := ApplyRenames(templateDir, reversed); err != nil {
			return err
		}
	}
	log.Info("All template files have been processed.")
	return nil
}
