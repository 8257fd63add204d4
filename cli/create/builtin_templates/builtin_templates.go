package builtin_templates

import (
	"embed"
	"io/fs"
)

// Root is the templates root directory in TemplatesFs.
const Root = "templates"

//go:embed templates
var TemplatesFs embed.FS

// FS returns the file system holding the built-in templates.
func FS() fs.FS {
	return TemplatesFs
}
