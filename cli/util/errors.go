package util

import "errors"

var (
	// ErrCmdAbort is reported when user aborts the program.
	ErrCmdAbort = errors.New("aborted by user")
	// ErrValidation is reported for invalid user input: a bad project name or
	// an unsupported database.
	ErrValidation = errors.New("validation failed")
	// ErrConflict is reported when the target directory already exists.
	ErrConflict = errors.New("target already exists")
	// ErrConfiguration is reported when the template layout is broken, for
	// example an overlay directory is missing.
	ErrConfiguration = errors.New("invalid template configuration")
)

// ExitCode returns process exit code for the error returned by a command.
// User cancellation is not a failure.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrCmdAbort) {
		return 0
	}
	return 1
}
