package readline

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"syscall"
	"unicode/utf8"
)

// BasicBackend writes the prompt and reads one line from a stream, without
// any editing. It keeps no history.
type BasicBackend struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// NewBasicBackend returns a backend reading from in and prompting on out.
// nil arguments default to stdin and stdout.
func NewBasicBackend(in io.Reader, out io.Writer) *BasicBackend {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &BasicBackend{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
}

// Readline writes prompt, flushes it and reads up to the next newline. A
// final line without a newline is still returned as a Line.
func (b *BasicBackend) Readline(prompt string) Result {
	if _, err := b.out.WriteString(prompt); err != nil {
		return IOFailure(err)
	}
	if err := b.out.Flush(); err != nil {
		return IOFailure(err)
	}

	line, err := b.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return readFailure(err)
		}
		if line == "" {
			return EndOfInput()
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if !utf8.ValidString(line) {
		return EncodingFailure()
	}
	return Line(line)
}

func readFailure(err error) Result {
	if errors.Is(err, syscall.EINTR) {
		return Interrupted()
	}
	return IOFailure(err)
}

// LoadHistory does nothing.
func (b *BasicBackend) LoadHistory(string) error { return nil }

// SaveHistory does nothing.
func (b *BasicBackend) SaveHistory(string) error { return nil }

// AddHistoryEntry does nothing.
func (b *BasicBackend) AddHistoryEntry(string) error { return nil }

// Persistent reports false: the basic backend never touches history files.
func (b *BasicBackend) Persistent() bool { return false }

// Close flushes pending output. The underlying streams are left open.
func (b *BasicBackend) Close() error {
	return b.out.Flush()
}
