// Package terminal reads single key presses from a terminal in raw mode.
package terminal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/apex/log"
	"github.com/morikuni/aec"
	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

var (
	// ErrNotTerminal is returned when the input is not a terminal.
	ErrNotTerminal = errors.New("input is not a terminal")
	// ErrReleased is returned by Listen after the session is released.
	ErrReleased = errors.New("terminal session is released")
)

const readBufSize = 64

// Session owns the terminal input until it is released. While a session is
// active nothing else may read the input.
type Session struct {
	fd     int
	out    io.Writer
	state  *term.State
	reader cancelreader.CancelReader

	once       sync.Once
	releaseErr error
}

// Start switches the terminal into raw mode and hides the cursor.
func Start(in *os.File, out io.Writer) (*Session, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to switch terminal to raw mode: %w", err)
	}

	reader, err := cancelreader.NewReader(in)
	if err != nil {
		if restoreErr := term.Restore(fd, state); restoreErr != nil {
			log.Debugf("Failed to restore terminal: %s", restoreErr)
		}
		return nil, fmt.Errorf("failed to create terminal reader: %w", err)
	}

	fmt.Fprint(out, aec.Hide)
	return &Session{fd: fd, out: out, state: state, reader: reader}, nil
}

// Listen reads key presses and passes them to onEvent until onEvent returns
// false. It returns the context error if ctx is cancelled and ErrReleased if
// the session is released while listening.
func (s *Session) Listen(ctx context.Context, onEvent func(KeyEvent) bool) error {
	stop := context.AfterFunc(ctx, func() { s.reader.Cancel() })
	defer stop()

	buf := make([]byte, readBufSize)
	for {
		n, err := s.reader.Read(buf)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, cancelreader.ErrCanceled) {
				return ErrReleased
			}
			return fmt.Errorf("failed to read terminal input: %w", err)
		}
		for _, event := range Decode(buf[:n]) {
			if !onEvent(event) {
				return nil
			}
		}
	}
}

// Release restores the terminal mode and shows the cursor. It is safe to call
// Release several times.
func (s *Session) Release() error {
	s.once.Do(func() {
		s.reader.Cancel()
		if err := s.reader.Close(); err != nil {
			log.Debugf("Failed to close terminal reader: %s", err)
		}
		fmt.Fprint(s.out, aec.Show)
		if err := term.Restore(s.fd, s.state); err != nil {
			s.releaseErr = fmt.Errorf("failed to restore terminal mode: %w", err)
		}
	})
	return s.releaseErr
}

// lineWriter converts LF to CRLF.
type lineWriter struct {
	w io.Writer
}

// NewLineWriter returns a writer which translates "\n" to "\r\n". Raw mode
// disables output post-processing, so a bare line feed does not return the
// cursor to the first column.
func NewLineWriter(w io.Writer) io.Writer {
	return lineWriter{w: w}
}

func (lw lineWriter) Write(p []byte) (int, error) {
	converted := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	if _, err := lw.w.Write(converted); err != nil {
		return 0, err
	}
	return len(p), nil
}
