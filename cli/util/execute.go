package util

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

type emptyStruct struct{}

// readyChan is a channel used to signal completion of command execution.
type readyChan chan emptyStruct

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond

	ready = emptyStruct{}
)

// sendReady sends ready to channel.
func sendReady(readyChannel readyChan) {
	readyChannel <- ready
}

// startAndWaitCommand executes a command
// and sends `ready` flag to the channel before return.
func startAndWaitCommand(cmd *exec.Cmd, readyChannel readyChan,
	workGroup *sync.WaitGroup, err *error,
) {
	defer workGroup.Done()
	defer sendReady(readyChannel)

	if *err = cmd.Start(); *err != nil {
		return
	}
	*err = cmd.Wait()
}

// StartCommandSpinner starts running spinner
// until `ready` flag is received from the channel.
func StartCommandSpinner(readyChannel readyChan, wg *sync.WaitGroup, prefix string) {
	defer wg.Done()

	spinner := spinner.New(spinnerPicture, spinnerUpdateTime)
	if prefix != "" {
		spinner.Prefix = fmt.Sprintf("%s ", strings.TrimSpace(prefix))
	}

	spinner.Start()

	// Wait for the command to complete.
	<-readyChannel

	spinner.Stop()
}

// RunCommand runs specified command in workingDir and returns an error.
// If showOutput is set to true, the command inherits standard streams.
// Else the output is shown only if the command fails, and a spinner is shown
// while the command is running.
func RunCommand(cmd *exec.Cmd, workingDir string, showOutput bool) error {
	var err error
	var workGroup sync.WaitGroup
	readyChannel := make(readyChan, 1)

	var outputBuf *os.File

	cmd.Dir = workingDir
	if showOutput {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		if outputBuf, err = os.CreateTemp("", "out"); err != nil {
			log.Warnf("Failed to create tmp file to store command output: %s", err)
		} else {
			cmd.Stdout = outputBuf
			cmd.Stderr = outputBuf
			defer outputBuf.Close()
			defer os.Remove(outputBuf.Name())
		}

		if isatty.IsTerminal(os.Stdout.Fd()) {
			workGroup.Add(1)
			go StartCommandSpinner(readyChannel, &workGroup, "")
		}
	}
	log.Debugf("Run: %s", cmd)

	workGroup.Add(1)
	go startAndWaitCommand(cmd, readyChannel, &workGroup, &err)

	workGroup.Wait()

	if err != nil {
		if outputBuf != nil {
			if err := PrintFromStart(os.Stdout, outputBuf); err != nil {
				log.Warnf("Failed to show command output: %s", err)
			}
		}
		return fmt.Errorf("failed to run %q: %w", cmd.String(), err)
	}

	return nil
}

// PrintFromStart copies the file content to w from the beginning.
func PrintFromStart(w io.Writer, file *os.File) error {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek file begin: %s", err)
	}
	if _, err := io.Copy(w, file); err != nil {
		log.Warnf("Failed to print file content: %s", err)
	}

	return nil
}

// ExecuteCommandContext executes program with given args in workDir. Standard
// streams are inherited, so the program may interact with the user.
func ExecuteCommandContext(ctx context.Context, workDir string, program string,
	args ...string,
) error {
	if workDir == "" {
		workDir, _ = os.Getwd()
	}
	return RunCommand(exec.CommandContext(ctx, program, args...), workDir, true)
}

// ExecuteQuietCommandContext is like ExecuteCommandContext, but the program
// output is shown only if it fails.
func ExecuteQuietCommandContext(ctx context.Context, workDir string, program string,
	args ...string,
) error {
	return RunCommand(exec.CommandContext(ctx, program, args...), workDir, false)
}
