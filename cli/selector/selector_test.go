package selector

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpexpress/create-tpexpress/cli/terminal"
	"github.com/tpexpress/create-tpexpress/cli/util"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// scriptedInput replays key events.
type scriptedInput struct {
	events   []terminal.KeyEvent
	err      error
	released int
}

func (s *scriptedInput) Listen(ctx context.Context, onEvent func(terminal.KeyEvent) bool) error {
	for _, event := range s.events {
		if !onEvent(event) {
			return nil
		}
	}
	if s.err != nil {
		return s.err
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *scriptedInput) Release() error {
	s.released++
	return nil
}

func databaseMenu() Menu {
	return Menu{
		Title: "Select a database:",
		Hint:  "(Use arrow keys)",
		Options: []Option{
			{ID: "mongoose", Label: "MongoDB with Mongoose", Description: "(NoSQL)"},
			{ID: "drizzle", Label: "Drizzle with PostgreSQL", Description: "(ORM)"},
			{ID: "prisma", Label: "Prisma with PostgreSQL", Description: "(client)"},
			{ID: "postgres", Label: "Plain PostgreSQL", Description: "(pg)"},
		},
	}
}

func TestMenuRunConfirm(t *testing.T) {
	input := &scriptedInput{events: []terminal.KeyEvent{
		terminal.KeyDown, terminal.KeyOther, terminal.KeyDown, terminal.KeyDown, terminal.KeyEnter,
	}}
	var out bytes.Buffer

	option, err := databaseMenu().Run(context.Background(), input, &out)
	require.NoError(t, err)
	assert.Equal(t, "postgres", option.ID)
	assert.Equal(t, 1, input.released)

	output := out.String()
	assert.Equal(t, 1, strings.Count(output, "Select a database:"))
	// Three redraws and the final collapse, each clears exactly 5 lines.
	assert.Equal(t, 4, strings.Count(output, "\x1b[5A\x1b[0J"))
	assert.True(t, strings.HasSuffix(output, "\x1b[5A\x1b[0J✔ Plain PostgreSQL\n\n"))
}

func TestMenuRunInitialRender(t *testing.T) {
	input := &scriptedInput{events: []terminal.KeyEvent{terminal.KeyEnter}}
	var out bytes.Buffer

	menu := databaseMenu()
	menu.Initial = 1
	option, err := menu.Run(context.Background(), input, &out)
	require.NoError(t, err)
	assert.Equal(t, "drizzle", option.ID)

	expected := "\nSelect a database:\n(Use arrow keys)\n\n" +
		"  MongoDB with Mongoose (NoSQL)\n" +
		"✔ Drizzle with PostgreSQL\n" +
		"  Prisma with PostgreSQL (client)\n" +
		"  Plain PostgreSQL (pg)\n" +
		"\n" +
		"\x1b[5A\x1b[0J✔ Drizzle with PostgreSQL\n\n"
	assert.Equal(t, expected, out.String())
}

func TestMenuRunRedrawSizeFollowsOptions(t *testing.T) {
	menu := Menu{Title: "Pick", Options: makeOptions(2)}
	input := &scriptedInput{events: []terminal.KeyEvent{terminal.KeyUp, terminal.KeyEnter}}
	var out bytes.Buffer

	option, err := menu.Run(context.Background(), input, &out)
	require.NoError(t, err)
	assert.Equal(t, "opt1", option.ID)
	assert.Equal(t, 2, strings.Count(out.String(), "\x1b[3A\x1b[0J"))
}

func TestMenuRunSingleOption(t *testing.T) {
	menu := Menu{Title: "Pick", Options: makeOptions(1)}
	input := &scriptedInput{events: []terminal.KeyEvent{
		terminal.KeyUp, terminal.KeyDown, terminal.KeyEnter,
	}}
	var out bytes.Buffer

	option, err := menu.Run(context.Background(), input, &out)
	require.NoError(t, err)
	assert.Equal(t, "opt0", option.ID)
	// No redraws, only the collapse.
	assert.Equal(t, 1, strings.Count(out.String(), "\x1b[2A\x1b[0J"))
}

func TestMenuRunCancel(t *testing.T) {
	input := &scriptedInput{events: []terminal.KeyEvent{terminal.KeyDown, terminal.KeyCancel}}
	var out bytes.Buffer

	_, err := databaseMenu().Run(context.Background(), input, &out)
	require.ErrorIs(t, err, util.ErrCmdAbort)
	assert.Equal(t, 1, input.released)
	assert.Equal(t, 0, util.ExitCode(err))
}

func TestMenuRunContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	input := &scriptedInput{}
	var out bytes.Buffer

	_, err := databaseMenu().Run(ctx, input, &out)
	require.ErrorIs(t, err, util.ErrCmdAbort)
	assert.Equal(t, 1, input.released)
}

func TestMenuRunInputFailure(t *testing.T) {
	readErr := errors.New("read failed")
	input := &scriptedInput{err: readErr}
	var out bytes.Buffer

	_, err := databaseMenu().Run(context.Background(), input, &out)
	require.ErrorIs(t, err, readErr)
	assert.Equal(t, 1, input.released)
}

func TestMenuRunNoOptions(t *testing.T) {
	input := &scriptedInput{}
	var out bytes.Buffer

	_, err := Menu{Title: "Empty"}.Run(context.Background(), input, &out)
	require.ErrorIs(t, err, ErrNoOptions)
	assert.Equal(t, 1, input.released)
	assert.Empty(t, out.String())
}
