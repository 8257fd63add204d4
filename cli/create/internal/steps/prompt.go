package steps

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/muesli/cancelreader"

	"github.com/tpexpress/create-tpexpress/cli/util"
)

// Prompter asks the user questions in line mode.
type Prompter interface {
	// AskProjectName asks for the project location. An empty answer means
	// the default name.
	AskProjectName(ctx context.Context, defaultName string) (string, error)
	// Confirm asks a yes/no question, "no" is the default.
	Confirm(ctx context.Context, question string) (bool, error)
}

// consolePrompter implements Prompter on top of the standard input. Terminal
// input is handled by promptui, piped input is read line by line.
type consolePrompter struct {
	in       *os.File
	isTTY    bool
	lineRead *bufio.Reader
}

// NewConsolePrompter creates new console prompter.
func NewConsolePrompter(in *os.File) Prompter {
	return &consolePrompter{
		in:       in,
		isTTY:    isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()),
		lineRead: bufio.NewReader(in),
	}
}

// run executes the prompt reading from a cancelable copy of the input. The
// reader is cancelled before returning, so no goroutine keeps reading the
// input after the prompt is done.
func (p *consolePrompter) run(ctx context.Context, prompt *promptui.Prompt) (string, error) {
	reader, err := cancelreader.NewReader(p.in)
	if err != nil {
		return "", fmt.Errorf("failed to create input reader: %w", err)
	}
	defer reader.Close()
	defer reader.Cancel()

	stop := context.AfterFunc(ctx, func() { reader.Cancel() })
	defer stop()

	prompt.Stdin = reader
	result, err := prompt.Run()
	if ctx.Err() != nil || errors.Is(err, promptui.ErrInterrupt) ||
		errors.Is(err, promptui.ErrEOF) {
		return "", fmt.Errorf("prompt interrupted: %w", util.ErrCmdAbort)
	}
	return result, err
}

func (p *consolePrompter) readLine() (string, error) {
	input, err := p.lineRead.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error getting user input: %s", err)
	}
	return strings.TrimSpace(input), nil
}

// AskProjectName asks for the project location.
func (p *consolePrompter) AskProjectName(ctx context.Context, defaultName string) (string, error) {
	if !p.isTTY {
		fmt.Printf("Project location (%s): ", defaultName)
		return p.readLine()
	}

	prompt := promptui.Prompt{
		Label:   "Project location",
		Default: defaultName,
	}
	return p.run(ctx, &prompt)
}

// Confirm asks a yes/no question.
func (p *consolePrompter) Confirm(ctx context.Context, question string) (bool, error) {
	if !p.isTTY {
		return util.AskConfirm(p.lineRead, question)
	}

	prompt := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
	}
	_, err := p.run(ctx, &prompt)
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
