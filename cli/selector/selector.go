// Package selector implements an arrow-key driven single choice menu.
package selector

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/apex/log"

	"github.com/tpexpress/create-tpexpress/cli/terminal"
	"github.com/tpexpress/create-tpexpress/cli/util"
)

// Input is a source of key events. The menu takes ownership of the input and
// releases it before Run returns.
type Input interface {
	// Listen passes key events to onEvent until it returns false.
	Listen(ctx context.Context, onEvent func(terminal.KeyEvent) bool) error
	// Release gives the input back. Must be idempotent.
	Release() error
}

// Menu is a single choice menu.
type Menu struct {
	// Title is printed once above the options.
	Title string
	// Hint is printed below the title.
	Hint string
	// Options to choose from, in display order.
	Options []Option
	// Initial is the index of the option selected at start.
	Initial int
}

// Run shows the menu and waits for the user choice. Cancellation by Ctrl-C or
// by ctx returns an error wrapping util.ErrCmdAbort.
func (m Menu) Run(ctx context.Context, input Input, out io.Writer) (Option, error) {
	defer func() {
		if err := input.Release(); err != nil {
			log.Warnf("%s", err)
		}
	}()

	state, err := NewState(m.Options, m.Initial)
	if err != nil {
		return Option{}, err
	}

	r := newRenderer(out, len(state.Options))
	r.header(m.Title, m.Hint)
	r.options(state)

	action := ActionNone
	err = input.Listen(ctx, func(event terminal.KeyEvent) bool {
		state, action = Transition(state, event)
		switch action {
		case ActionRedraw:
			r.redraw(state)
		case ActionConfirm, ActionCancel:
			return false
		}
		return true
	})

	switch {
	case err == nil && action == ActionConfirm:
		r.collapse(state.Current())
		return state.Current(), nil
	case err == nil && action == ActionCancel:
		fmt.Fprintln(out)
		return Option{}, fmt.Errorf("selection cancelled: %w", util.ErrCmdAbort)
	case ctx.Err() != nil || errors.Is(err, terminal.ErrReleased):
		fmt.Fprintln(out)
		return Option{}, fmt.Errorf("selection interrupted: %w", util.ErrCmdAbort)
	case err != nil:
		return Option{}, err
	}
	return Option{}, fmt.Errorf("selection stopped without a choice: %w", util.ErrCmdAbort)
}
