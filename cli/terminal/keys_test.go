package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []KeyEvent
	}{
		{"up", "\x1b[A", []KeyEvent{KeyUp}},
		{"down", "\x1b[B", []KeyEvent{KeyDown}},
		{"application mode arrows", "\x1bOA\x1bOB", []KeyEvent{KeyUp, KeyDown}},
		{"modified arrow", "\x1b[1;5A", []KeyEvent{KeyUp}},
		{"right arrow", "\x1b[C", []KeyEvent{KeyOther}},
		{"carriage return", "\r", []KeyEvent{KeyEnter}},
		{"new line", "\n", []KeyEvent{KeyEnter}},
		{"crlf", "\r\n", []KeyEvent{KeyEnter}},
		{"ctrl-c", "\x03", []KeyEvent{KeyCancel}},
		{"letters", "jk", []KeyEvent{KeyOther, KeyOther}},
		{"lone escape", "\x1b", []KeyEvent{KeyOther}},
		{"truncated csi", "\x1b[1;", []KeyEvent{KeyOther}},
		{"alt key", "\x1bx", []KeyEvent{KeyOther, KeyOther}},
		{
			"burst",
			"\x1b[B\x1b[B\x1b[A\r",
			[]KeyEvent{KeyDown, KeyDown, KeyUp, KeyEnter},
		},
		{"empty", "", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Decode([]byte(tc.input)))
		})
	}
}

func TestKeyEventString(t *testing.T) {
	assert.Equal(t, "up", KeyUp.String())
	assert.Equal(t, "down", KeyDown.String())
	assert.Equal(t, "enter", KeyEnter.String())
	assert.Equal(t, "cancel", KeyCancel.String())
	assert.Equal(t, "other", KeyOther.String())
}
