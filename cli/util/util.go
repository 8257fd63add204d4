package util

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ArgError represents command line arguments error.
type ArgError struct {
	msg string
}

// Error returns error message.
func (e ArgError) Error() string {
	return e.msg
}

// NewArgError creates and returns new argument error.
func NewArgError(text string) error {
	return &ArgError{text}
}

// VersionFunc is a type of function that return
// string with current CLI version.
type VersionFunc func(bool, bool) string

// InternalError shows error information, version of the tool and call stack.
func InternalError(format string, f VersionFunc, err ...any) error {
	errorFmt := `whoops! It looks like something is wrong with this version of create-tpexpress.
Error: %s
Version: %s
Stacktrace:
%s`
	version := f(false, false)

	return fmt.Errorf(errorFmt, fmt.Sprintf(format, err...), version, debug.Stack())
}

// IsDir checks if filePath is a directory. Returns true if the directory exists.
func IsDir(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return fileInfo.IsDir()
}

// IsRegularFile checks if filePath is a regular file. Returns true if the file exists
// and it is a regular file.
func IsRegularFile(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return fileInfo.Mode().IsRegular()
}

// Exists returns true if anything (file, directory, symlink) exists at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// ParseYAML parse yaml file at specified path.
func ParseYAML(path string) (map[string]any, error) {
	fileContent, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(`failed to read "%s" file: %s`, path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(fileContent, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %s", err)
	}

	return raw, nil
}

// GetYamlFileName checks if the file with .yaml or .yml extension exists and
// returns its name. If mustExist is set, an error is returned for a missing file.
func GetYamlFileName(fileName string, mustExist bool) (string, error) {
	ext := filepath.Ext(fileName)
	if ext != ".yaml" && ext != ".yml" {
		return "", fmt.Errorf("provided file '%s' has no .yaml/.yml extension", fileName)
	}

	if _, err := os.Stat(fileName); err == nil {
		return fileName, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	alternative := strings.TrimSuffix(fileName, ext) + ".yml"
	if ext == ".yml" {
		alternative = strings.TrimSuffix(fileName, ext) + ".yaml"
	}
	if _, err := os.Stat(alternative); err == nil {
		return alternative, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	if mustExist {
		return "", os.ErrNotExist
	}
	return fileName, nil
}

// AskConfirm asks the user for confirmation and returns true if yes.
func AskConfirm(ioReader io.Reader, question string) (bool, error) {
	reader := bufio.NewReader(ioReader)

	for {
		fmt.Printf("%s [y/N]: ", question)

		resp, err := reader.ReadString('\n')
		resp = strings.ToLower(strings.TrimSpace(resp))
		if err != nil && !(errors.Is(err, io.EOF) && resp != "") {
			return false, err
		}

		switch resp {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
	}
}

// RunCommandAndGetOutput returns output of command.
func RunCommandAndGetOutput(program string, args ...string) (string, error) {
	out, err := exec.Command(program, args...).Output()
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// HandleCmdErr handles an error returned by command implementation.
// If received error is of an ArgError type, usage help is printed.
// User cancellation terminates the process with zero exit code.
func HandleCmdErr(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	var argError *ArgError
	if errors.As(err, &argError) {
		log.Error(argError.Error())
		cmd.Usage()
		os.Exit(1)
	}
	if errors.Is(err, ErrCmdAbort) {
		log.Warn("Installation cancelled by user.")
		os.Exit(ExitCode(err))
	}
	log.Error(err.Error())
	os.Exit(ExitCode(err))
}
