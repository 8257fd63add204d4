package version

import (
	"errors"
	"fmt"
	"strings"

	goVersion "github.com/hashicorp/go-version"

	"github.com/tpexpress/create-tpexpress/cli/util"
)

// ErrRuntimeTooOld is returned when the JavaScript runtime is older than required.
var ErrRuntimeTooOld = errors.New("runtime version is not supported")

// GetRuntimeVersion runs `<command> --version` and parses the printed version,
// for example "v22.19.0".
func GetRuntimeVersion(command string) (*goVersion.Version, error) {
	out, err := util.RunCommandAndGetOutput(command, "--version")
	if err != nil {
		return nil, fmt.Errorf("failed to get %s version: %w", command, err)
	}
	return ParseRuntimeVersion(out)
}

// ParseRuntimeVersion parses output of `node --version`.
func ParseRuntimeVersion(out string) (*goVersion.Version, error) {
	verStr := strings.TrimSpace(out)
	if verStr == "" {
		return nil, fmt.Errorf("empty version output")
	}
	ver, err := goVersion.NewVersion(verStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse version %q: %w", verStr, err)
	}
	return ver, nil
}

// CheckMinVersion returns ErrRuntimeTooOld if actual is lower than minVersion.
func CheckMinVersion(actual *goVersion.Version, minVersion string) error {
	constraint, err := goVersion.NewConstraint(">= " + minVersion)
	if err != nil {
		return fmt.Errorf("invalid minimal version %q: %w", minVersion, err)
	}
	if !constraint.Check(actual.Core()) {
		return fmt.Errorf("%w: v%s, required v%s or higher",
			ErrRuntimeTooOld, actual, minVersion)
	}
	return nil
}
