//go:build !js && !wasip1

package readline

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nao1215/readline/internal/editor"
)

// InteractiveOption configures an InteractiveBackend.
type InteractiveOption func(*interactiveConfig)

type interactiveConfig struct {
	device     string
	output     io.Writer
	maxHistory int
	theme      string
	input      io.Reader
	terminal   editor.Terminal
}

// WithTerminalDevice reads from the terminal at path instead of the
// controlling terminal.
func WithTerminalDevice(path string) InteractiveOption {
	return func(c *interactiveConfig) {
		c.device = path
	}
}

// WithOutput draws the prompt and the edited line on w instead of stdout.
func WithOutput(w io.Writer) InteractiveOption {
	return func(c *interactiveConfig) {
		c.output = w
	}
}

// WithMaxHistory bounds the number of history entries (default: 1000).
func WithMaxHistory(n int) InteractiveOption {
	return func(c *interactiveConfig) {
		c.maxHistory = n
	}
}

// WithTheme selects a built-in color scheme by name: default, dark, light,
// dracula or monochrome. Unknown names keep the default. A non-empty
// NO_COLOR environment variable always selects monochrome.
func WithTheme(name string) InteractiveOption {
	return func(c *interactiveConfig) {
		c.theme = name
	}
}

// WithInput reads from r instead of stdin when r is not a terminal. A
// terminal input is still edited through the controlling terminal.
func WithInput(r io.Reader) InteractiveOption {
	return func(c *interactiveConfig) {
		c.input = r
	}
}

func withTerminal(t editor.Terminal) InteractiveOption {
	return func(c *interactiveConfig) {
		c.terminal = t
	}
}

// InteractiveBackend reads lines with a terminal line editor.
//
// The editor uses list completion, a tab stop of 8 columns and leaves
// bracketed paste disabled, so pasted text containing newlines is returned
// one line per Readline call. When the input (stdin unless WithInput is
// given) is not a terminal and no device was given, lines are read from it
// without editing; history still works.
type InteractiveBackend struct {
	helper   EditorHelper
	editor   *editor.Editor
	fallback *BasicBackend
}

// ThemeNames returns the names accepted by WithTheme.
func ThemeNames() []string {
	return editor.ThemeNames()
}

// NewInteractiveBackend returns an interactive backend consulting helper.
// The terminal is opened by the first Readline.
func NewInteractiveBackend(helper EditorHelper, opts ...InteractiveOption) *InteractiveBackend {
	if helper == nil {
		helper = HelperBase{}
	}
	cfg := interactiveConfig{
		maxHistory: 1000,
		input:      os.Stdin,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	scheme := editor.ThemeDefault
	if theme, ok := editor.ThemeByName(cfg.theme); ok {
		scheme = theme
	}
	if os.Getenv("NO_COLOR") != "" {
		scheme = editor.ThemeMonochrome
	}

	history := editor.DefaultHistoryConfig()
	if cfg.maxHistory > 0 {
		history.MaxEntries = cfg.maxHistory
	}

	// Alt+Enter starts a new line without consulting the validator
	keyMap := editor.NewDefaultKeyMap()
	keyMap.BindSequence("\r", editor.ActionNewLine)

	options := []editor.Option{
		editor.WithKeyMap(keyMap),
		editor.WithCompletionType(editor.CompletionList),
		editor.WithTabStop(8),
		editor.WithBracketedPaste(false),
		editor.WithHistory(history),
		editor.WithColorScheme(scheme),
		editor.WithCompleter(editorCompleter(helper)),
		editor.WithHighlighter(helper.Highlight),
		editor.WithHinter(helper.Hint),
		editor.WithValidator(editorValidator(helper)),
	}
	if cfg.device != "" {
		options = append(options, editor.WithDevice(cfg.device))
	}
	if cfg.output != nil {
		options = append(options, editor.WithOutput(cfg.output))
	}
	if cfg.terminal != nil {
		options = append(options, editor.WithTerminal(cfg.terminal))
	}

	b := &InteractiveBackend{
		helper: helper,
		editor: editor.New(options...),
	}
	if cfg.terminal == nil && cfg.device == "" && cfg.input != nil && !isTerminal(cfg.input) {
		b.fallback = NewBasicBackend(cfg.input, cfg.output)
	}
	return b
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func editorCompleter(helper EditorHelper) func(editor.Document) (int, []editor.Suggestion, error) {
	return func(d editor.Document) (int, []editor.Suggestion, error) {
		start, candidates, err := helper.Complete(d.Text, d.CursorPosition)
		if err != nil {
			return 0, nil, err
		}
		suggestions := make([]editor.Suggestion, len(candidates))
		for i, c := range candidates {
			suggestions[i] = editor.Suggestion{
				Text:        c.Replacement,
				Display:     c.Display,
				Description: c.Description,
			}
		}
		return start, suggestions, nil
	}
}

func editorValidator(helper EditorHelper) func(string) editor.Validation {
	return func(line string) editor.Validation {
		v := helper.Validate(line)
		switch v.Kind {
		case Incomplete:
			return editor.Validation{Kind: editor.ValidationIncomplete, Message: v.Message}
		case Invalid:
			return editor.Validation{Kind: editor.ValidationInvalid, Message: v.Message}
		default:
			return editor.Validation{Kind: editor.ValidationValid}
		}
	}
}

// Readline edits one line on the terminal.
func (b *InteractiveBackend) Readline(prompt string) Result {
	if b.fallback != nil {
		return b.fallback.Readline(prompt)
	}
	line, err := b.editor.ReadLine(prompt)
	if err != nil {
		return editorResult(err)
	}
	return Line(line)
}

// editorResult classifies an error returned by the editor.
func editorResult(err error) Result {
	var ioErr *editor.IOError
	switch {
	case errors.Is(err, editor.ErrInterrupted), errors.Is(err, ErrInterrupted):
		return Interrupted()
	case errors.Is(err, editor.ErrEOF), errors.Is(err, ErrEOF):
		return EndOfInput()
	case errors.Is(err, editor.ErrInvalidUTF8), errors.Is(err, ErrInvalidEncoding):
		return EncodingFailure()
	case errors.As(err, &ioErr):
		return IOFailure(ioErr.Err)
	default:
		return Other(err)
	}
}

// LoadHistory appends the entries stored in path. A missing file is not an
// error.
func (b *InteractiveBackend) LoadHistory(path string) error {
	return b.editor.History().Load(path)
}

// SaveHistory writes the history to path. The parent directory must exist.
func (b *InteractiveBackend) SaveHistory(path string) error {
	return b.editor.History().Save(path)
}

// AddHistoryEntry appends entry unless it is empty or repeats the last one.
func (b *InteractiveBackend) AddHistoryEntry(entry string) error {
	b.editor.History().Add(entry)
	return nil
}

// History returns the entries, oldest first.
func (b *InteractiveBackend) History() []string {
	return b.editor.History().Entries()
}

// Persistent reports true.
func (b *InteractiveBackend) Persistent() bool { return true }

// Close releases the terminal.
func (b *InteractiveBackend) Close() error {
	if b.fallback != nil {
		if err := b.fallback.Close(); err != nil {
			return err
		}
	}
	return b.editor.Close()
}
