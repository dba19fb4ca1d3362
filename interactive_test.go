//go:build !js && !wasip1

package readline

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/nao1215/readline/internal/editor"
)

func newMockBackend(t *testing.T, helper EditorHelper, input string, opts ...InteractiveOption) (*InteractiveBackend, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	opts = append([]InteractiveOption{
		withTerminal(editor.NewMockTerminal(input)),
		WithOutput(&out),
	}, opts...)
	b := NewInteractiveBackend(helper, opts...)
	t.Cleanup(func() { _ = b.Close() })
	return b, &out
}

// brokenTerminal fails every read.
type brokenTerminal struct {
	err error
}

func (brokenTerminal) SetRaw() error                  { return nil }
func (brokenTerminal) Restore() error                 { return nil }
func (brokenTerminal) Size() (int, int, error)        { return 80, 24, nil }
func (t brokenTerminal) ReadRune() (rune, int, error) { return 0, 0, t.err }
func (brokenTerminal) Close() error                   { return nil }

type completerFunc func(line string, pos int) (int, []Candidate, error)

type funcHelper struct {
	HelperBase
	complete completerFunc
	validate func(string) Validation
}

func (h funcHelper) Complete(line string, pos int) (int, []Candidate, error) {
	if h.complete == nil {
		return h.HelperBase.Complete(line, pos)
	}
	return h.complete(line, pos)
}

func (h funcHelper) Validate(line string) Validation {
	if h.validate == nil {
		return h.HelperBase.Validate(line)
	}
	return h.validate(line)
}

func TestInteractiveBackendReadline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Result
	}{
		{name: "two lines then end of input", input: "a\rb\r", want: []Result{Line("a"), Line("b"), EndOfInput()}},
		{name: "line feed submits", input: "x = 1\n", want: []Result{Line("x = 1"), EndOfInput()}},
		{name: "pasted lines are read one at a time", input: "a\nb\n", want: []Result{Line("a"), Line("b"), EndOfInput()}},
		{name: "ctrl+c", input: "abc\x03", want: []Result{Interrupted(), EndOfInput()}},
		{name: "ctrl+d on empty line", input: "\x04", want: []Result{EndOfInput()}},
		{name: "ctrl+d deletes forward", input: "ab\x1b[D\x04\r", want: []Result{Line("a")}},
		{name: "editing", input: "helo\x1b[Dl\x1b[F!\r", want: []Result{Line("hello!")}},
		{name: "empty line", input: "\r", want: []Result{Line(""), EndOfInput()}},
		{name: "tab without candidates is ignored", input: "a\tb\r", want: []Result{Line("ab")}},
		{name: "alt+enter inserts a newline", input: "a\x1b\rb\r", want: []Result{Line("a\nb")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, _ := newMockBackend(t, HelperBase{}, tt.input)
			for i, want := range tt.want {
				assert.Equal(t, want, b.Readline(">>> "), "read %d", i)
			}
		})
	}
}

func TestInteractiveBackendEncodingFailure(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	input := []rune{'a', utf8.RuneError, 'o', 'k', '\r'}
	b := NewInteractiveBackend(HelperBase{},
		withTerminal(editor.NewMockTerminalRunes(input)),
		WithOutput(&out),
	)

	assert.Equal(t, EncodingFailure(), b.Readline("> "))
	// The next read starts a fresh line
	assert.Equal(t, Line("ok"), b.Readline("> "))
}

func TestInteractiveBackendErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	t.Run("completer interrupts", func(t *testing.T) {
		t.Parallel()

		helper := funcHelper{complete: func(string, int) (int, []Candidate, error) {
			return 0, nil, ErrInterrupted
		}}
		b, _ := newMockBackend(t, helper, "x\t")
		assert.Equal(t, Interrupted(), b.Readline("> "))
	})

	t.Run("completer fails", func(t *testing.T) {
		t.Parallel()

		helper := funcHelper{complete: func(string, int) (int, []Candidate, error) {
			return 0, nil, boom
		}}
		b, _ := newMockBackend(t, helper, "x\t")
		res := b.Readline("> ")
		assert.Equal(t, KindOther, res.Kind())
		assert.ErrorIs(t, res.Err(), boom)
	})

	t.Run("terminal read fails", func(t *testing.T) {
		t.Parallel()

		b := NewInteractiveBackend(HelperBase{},
			withTerminal(brokenTerminal{err: boom}),
			WithOutput(io.Discard),
		)
		res := b.Readline("> ")
		assert.Equal(t, KindIO, res.Kind())
		assert.Equal(t, boom, res.Err())
	})

	t.Run("read after close", func(t *testing.T) {
		t.Parallel()

		b, _ := newMockBackend(t, HelperBase{}, "a\r")
		require.NoError(t, b.Close())
		res := b.Readline("> ")
		assert.Equal(t, KindIO, res.Kind())
		assert.ErrorIs(t, res.Err(), editor.ErrClosed)
	})
}

func TestInteractiveBackendHelper(t *testing.T) {
	t.Parallel()

	t.Run("completion", func(t *testing.T) {
		t.Parallel()

		helper := funcHelper{complete: NewKeywordCompleter("print", "pass").Complete}
		b, _ := newMockBackend(t, helper, "pri\t(1)\r")
		assert.Equal(t, Line("print(1)"), b.Readline(">>> "))
	})

	t.Run("completion list", func(t *testing.T) {
		t.Parallel()

		helper := funcHelper{complete: func(line string, pos int) (int, []Candidate, error) {
			return 0, []Candidate{
				{Replacement: "alpha", Display: "alpha (a)", Description: "first"},
				{Replacement: "alpine"},
			}, nil
		}}
		// Tab inserts "alp" and opens the list, Down selects the second
		// candidate, Enter accepts it and Enter submits.
		b, out := newMockBackend(t, helper, "a\t\x1b[B\r\r")
		assert.Equal(t, Line("alpine"), b.Readline("> "))
		assert.Contains(t, out.String(), "alpha (a)")
		assert.Contains(t, out.String(), "first")
	})

	t.Run("incomplete input continues", func(t *testing.T) {
		t.Parallel()

		helper := funcHelper{validate: func(line string) Validation {
			if strings.Count(line, "(") > strings.Count(line, ")") {
				return Validation{Kind: Incomplete}
			}
			return Validation{Kind: Valid}
		}}
		b, _ := newMockBackend(t, helper, "f(\r1)\r")
		assert.Equal(t, Line("f(\n1)"), b.Readline("> "))
	})

	t.Run("invalid input is kept", func(t *testing.T) {
		t.Parallel()

		helper := funcHelper{validate: func(line string) Validation {
			if strings.HasSuffix(line, ")") && !strings.Contains(line, "(") {
				return Validation{Kind: Invalid, Message: "unbalanced"}
			}
			return Validation{Kind: Valid}
		}}
		b, out := newMockBackend(t, helper, "1)\r\x1b[D(\r")
		assert.Equal(t, Line("1()"), b.Readline("> "))
		assert.Contains(t, out.String(), "unbalanced")
	})
}

func TestInteractiveBackendHistory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "history")

	rl := NewWithBackend(HelperBase{}, NewInteractiveBackend(HelperBase{},
		withTerminal(editor.NewMockTerminal("")),
		WithOutput(io.Discard),
	))
	require.NoError(t, rl.LoadHistory(path), "missing file loads as empty history")
	require.NoError(t, rl.AddHistoryEntry("line one\nline two"))
	require.NoError(t, rl.AddHistoryEntry("print(1)"))
	require.NoError(t, rl.AddHistoryEntry("print(1)"))
	require.NoError(t, rl.AddHistoryEntry(""))
	require.NoError(t, rl.SaveHistory(path))
	require.NoError(t, rl.Close())

	// A fresh instance recalls the latest entry with Up
	b, _ := newMockBackend(t, HelperBase{}, "\x1b[A\r")
	require.NoError(t, b.LoadHistory(path))
	assert.Equal(t, []string{"line one\nline two", "print(1)"}, b.History())
	assert.Equal(t, Line("print(1)"), b.Readline(">>> "))
	assert.True(t, b.Persistent())
}

func TestInteractiveBackendHistorySearch(t *testing.T) {
	t.Parallel()

	b, _ := newMockBackend(t, HelperBase{}, "\x12imp\r\r")
	require.NoError(t, b.AddHistoryEntry("import os"))
	require.NoError(t, b.AddHistoryEntry("print(1)"))

	assert.Equal(t, Line("import os"), b.Readline(">>> "))
}

func TestInteractiveBackendLoadHistoryMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("#V2\nbad \\q escape\n"), 0600))

	rl := NewWithBackend(HelperBase{}, NewInteractiveBackend(HelperBase{},
		withTerminal(editor.NewMockTerminal("")),
		WithOutput(io.Discard),
	))
	err := rl.LoadHistory(path)
	require.Error(t, err)

	var parseErr *editor.HistoryParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestInteractiveBackendMaxHistory(t *testing.T) {
	t.Parallel()

	b, _ := newMockBackend(t, HelperBase{}, "", WithMaxHistory(2))
	for _, entry := range []string{"a", "b", "c"} {
		require.NoError(t, b.AddHistoryEntry(entry))
	}
	assert.Equal(t, []string{"b", "c"}, b.History())
}

func TestInteractiveBackendFallback(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	_, err = io.WriteString(w, "one\ntwo\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var out bytes.Buffer
	b := NewInteractiveBackend(HelperBase{}, WithInput(r), WithOutput(&out))

	assert.Equal(t, Line("one"), b.Readline("> "))
	require.NoError(t, b.AddHistoryEntry("one"))
	assert.Equal(t, Line("two"), b.Readline("> "))
	assert.Equal(t, EndOfInput(), b.Readline("> "))
	assert.Equal(t, "> > > ", out.String())
	assert.Equal(t, []string{"one"}, b.History())
	require.NoError(t, b.Close())
}

func TestInteractiveBackendReaderInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	b := NewInteractiveBackend(HelperBase{}, WithInput(strings.NewReader("x = 1\n")), WithOutput(&out))
	t.Cleanup(func() { _ = b.Close() })

	assert.Equal(t, Line("x = 1"), b.Readline(">>> "))
	assert.Equal(t, EndOfInput(), b.Readline(">>> "))
	assert.Equal(t, ">>> >>> ", out.String())
}

func TestInteractiveBackendTheme(t *testing.T) {
	t.Run("default colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")

		b, out := newMockBackend(t, HelperBase{}, "\r")
		assert.Equal(t, Line(""), b.Readline("$ "))
		assert.Contains(t, out.String(), editor.ThemeDefault.Prefix.ToANSI()+"$ ")
	})

	t.Run("no color", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		b, out := newMockBackend(t, HelperBase{}, "x\r", WithTheme("dracula"))
		assert.Equal(t, Line("x"), b.Readline("$ "))
		assert.NotContains(t, out.String(), "38;2;")
	})
}

func TestThemeNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"default", "dark", "light", "dracula", "monochrome"}, ThemeNames())
}

func TestNewUsesInteractiveBackend(t *testing.T) {
	t.Parallel()

	rl := New(HelperBase{})
	_, ok := rl.Backend().(*InteractiveBackend)
	assert.True(t, ok)
	require.NoError(t, rl.Close())
}

func TestInteractiveBackendPTY(t *testing.T) {
	t.Parallel()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	t.Cleanup(func() {
		_ = ptmx.Close()
		_ = tty.Close()
	})

	// Keep the typed carriage returns intact before the editor opens the device
	if _, err := term.MakeRaw(int(tty.Fd())); err != nil {
		t.Skipf("cannot set raw mode: %v", err)
	}
	_, err = ptmx.Write([]byte("a\rb\r"))
	require.NoError(t, err)

	b := NewInteractiveBackend(HelperBase{}, WithTerminalDevice(tty.Name()), WithOutput(io.Discard))
	t.Cleanup(func() { _ = b.Close() })

	assert.Equal(t, Line("a"), b.Readline("> "))
	assert.Equal(t, Line("b"), b.Readline("> "))
}
