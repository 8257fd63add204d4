package selector

import (
	"errors"
	"fmt"

	"github.com/tpexpress/create-tpexpress/cli/terminal"
)

// ErrNoOptions is returned when a menu is created without options.
var ErrNoOptions = errors.New("menu has no options")

// Action tells the caller what to do after a key event is applied.
type Action int

const (
	// ActionNone means nothing has changed.
	ActionNone Action = iota
	// ActionRedraw means the selected index has changed.
	ActionRedraw
	// ActionConfirm means the selected option is chosen.
	ActionConfirm
	// ActionCancel means the user cancelled the menu.
	ActionCancel
)

// State is a menu state: the options and the index of the selected one.
type State struct {
	Options  []Option
	Selected int
}

// NewState creates a menu state. The options list must not be empty and the
// initial index must point to an option.
func NewState(options []Option, initial int) (State, error) {
	if len(options) == 0 {
		return State{}, ErrNoOptions
	}
	if initial < 0 || initial >= len(options) {
		return State{}, fmt.Errorf("initial index %d is out of range [0, %d)",
			initial, len(options))
	}
	return State{Options: options, Selected: initial}, nil
}

// Current returns the selected option.
func (s State) Current() Option {
	return s.Options[s.Selected]
}

// Transition applies a key event to the state. Selection wraps around in both
// directions.
func Transition(s State, event terminal.KeyEvent) (State, Action) {
	n := len(s.Options)
	next := s
	switch event {
	case terminal.KeyUp:
		next.Selected = (s.Selected - 1 + n) % n
	case terminal.KeyDown:
		next.Selected = (s.Selected + 1) % n
	case terminal.KeyEnter:
		return s, ActionConfirm
	case terminal.KeyCancel:
		return s, ActionCancel
	default:
		return s, ActionNone
	}

	if next.Selected == s.Selected {
		return next, ActionNone
	}
	return next, ActionRedraw
}
