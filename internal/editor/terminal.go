package editor

import (
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// Terminal abstracts terminal operations for testability and cross-platform compatibility.
//
// Implementations:
//   - realTerminal: Uses go-tty for actual terminal interaction
//   - MockTerminal: Provides deterministic behavior for testing
type Terminal interface {
	SetRaw() error                        // Enter raw mode for immediate key processing
	Restore() error                       // Restore original terminal settings
	Size() (width, height int, err error) // Get terminal dimensions with safe fallbacks
	ReadRune() (rune, int, error)         // Read a single Unicode character from input
	Close() error                         // Clean up resources and prevent fd leaks
}

// realTerminal implements Terminal on top of go-tty.
//
// Raw mode is managed with golang.org/x/term on the descriptor go-tty reads
// from, so the controlling terminal is used even when stdin is redirected.
// The go-tty reader is kept for the lifetime of the terminal: bytes typed or
// pasted ahead of the current line stay buffered for the next read.
type realTerminal struct {
	tty           *tty.TTY
	closed        bool        // Track if terminal is already closed to prevent double-close panic on Windows
	fd            int         // Input descriptor for raw mode management
	originalState *term.State // Original terminal state to restore on exit
}

// newRealTerminal opens device, or the controlling terminal when device is empty.
func newRealTerminal(device string) (*realTerminal, error) {
	var (
		t   *tty.TTY
		err error
	)
	if device == "" {
		t, err = tty.Open()
	} else {
		t, err = tty.OpenDevice(device)
	}
	if err != nil {
		return nil, err
	}

	return &realTerminal{
		tty: t,
		fd:  int(t.Input().Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	// Always capture current terminal state before entering raw mode so that
	// every Restore returns to the state seen by this call.
	if !term.IsTerminal(t.fd) {
		return nil
	}
	state, err := term.GetState(t.fd)
	if err != nil {
		return err
	}
	t.originalState = state

	_, err = term.MakeRaw(t.fd)
	return err
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.fd) {
		err := term.Restore(t.fd, t.originalState)
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Safe fallback to prevent divide by zero
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Close() error {
	// Prevent double-close which causes panic on Windows
	if t.closed {
		return nil
	}
	t.closed = true
	if t.tty != nil {
		return t.tty.Close()
	}
	return nil
}
