package editor

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrEOF is returned when the user presses Ctrl+D on an empty line or the
	// terminal reaches end of input
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C
	ErrInterrupted = errors.New("interrupted")
	// ErrInvalidUTF8 is returned when the terminal delivers bytes that do not
	// decode as UTF-8
	ErrInvalidUTF8 = errors.New("invalid UTF-8 input")
	// ErrClosed is returned when reading from an editor after Close
	ErrClosed = errors.New("editor closed")

	errInvalidEscape = errors.New("invalid escape sequence")
)

// IOError reports a failure of the underlying terminal device.
type IOError struct {
	Op  string // operation that failed, e.g. "read" or "set raw mode"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// HistoryParseError reports a history file line that could not be decoded.
type HistoryParseError struct {
	Path string
	Line int
	Err  error
}

func (e *HistoryParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *HistoryParseError) Unwrap() error {
	return e.Err
}
