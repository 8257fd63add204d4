package create_ctx

import "io/fs"

// CreateCtx contains information for creating a project from templates.
type CreateCtx struct {
	// ProjectName is the project name passed on the command line. Empty if the
	// user must be asked. "." means the working directory.
	ProjectName string
	// DefaultProjectName is used when the user enters an empty name.
	DefaultProjectName string
	// Database is the database identifier passed on the command line.
	Database string
	// WorkDir is the launch working directory.
	WorkDir string
	// TemplatesFS holds the template root.
	TemplatesFS fs.FS
	// TemplatesRoot is the template root path in TemplatesFS.
	TemplatesRoot string
	// PackageManager installs project dependencies.
	PackageManager string
	// SkipInstall disables dependency installation.
	SkipInstall bool
	// QuietInstall hides package manager output unless it fails.
	QuietInstall bool
	// AssumeYes answers yes to confirmation questions.
	AssumeYes bool
	// Interactive is true if stdin is a terminal, so the menu can be shown.
	Interactive bool
	// NodeCommand is the JavaScript runtime executable.
	NodeCommand string
	// NodeMinVersion is the minimal supported runtime version.
	NodeMinVersion string
}
