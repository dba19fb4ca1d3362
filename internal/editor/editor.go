// Package editor is the interactive line editor behind the readline
// package's interactive backend.
//
// It owns the terminal (raw mode, key decoding), the in-memory history and
// the rendering of the prompt block, and exposes hooks for completion,
// highlighting, hinting and validation. Terminal acquisition is deferred to
// the first ReadLine call so that constructing an Editor never fails.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-colorable"

	"github.com/nao1215/readline/internal/fuzzy"
)

const (
	bracketedPasteOn  = "\x1b[?2004h"
	bracketedPasteOff = "\x1b[?2004l"
	pasteEnd          = "[201~"
)

// CompletionType selects how several completion candidates are presented.
type CompletionType int

const (
	// CompletionList inserts the longest common prefix and lists the candidates.
	CompletionList CompletionType = iota
	// completionCircular replaces the word with the next candidate on every Tab.
	completionCircular
)

// ValidationKind is the verdict of a Validator on the submitted buffer.
type ValidationKind int

const (
	// ValidationValid submits the line.
	ValidationValid ValidationKind = iota
	// ValidationIncomplete inserts a newline and keeps editing.
	ValidationIncomplete
	// ValidationInvalid keeps editing and shows the message.
	ValidationInvalid
)

// Validation is the result of validating the buffer on Enter.
type Validation struct {
	Kind    ValidationKind
	Message string
}

// Suggestion represents a completion candidate.
type Suggestion struct {
	Text        string // Replacement for the completed range
	Display     string // Label in the list; Text is shown when empty
	Description string // Shown next to the candidate in the list
}

// Document represents the current input state for completers.
type Document struct {
	Text           string // The entire input text
	CursorPosition int    // Byte offset of the cursor in Text
}

// TextBeforeCursor returns the text before the cursor
func (d *Document) TextBeforeCursor() string {
	if d.CursorPosition < 0 || d.CursorPosition > len(d.Text) {
		return d.Text
	}
	return d.Text[:d.CursorPosition]
}

// TextAfterCursor returns the text after the cursor
func (d *Document) TextAfterCursor() string {
	if d.CursorPosition < 0 || d.CursorPosition >= len(d.Text) {
		return ""
	}
	return d.Text[d.CursorPosition:]
}

// Config holds the configuration of an editor.
type Config struct {
	// Completer returns the byte offset where the replaced range starts and
	// the candidates. A non-nil error aborts ReadLine with that error.
	Completer      func(Document) (int, []Suggestion, error)
	Highlighter    func(line string, pos int) string
	Hinter         func(line string, pos int) string
	Validator      func(line string) Validation
	CompletionType CompletionType
	TabStop        int            // Columns per tab stop (default: 8)
	BracketedPaste bool           // Ask the terminal to wrap pastes in markers
	HistoryConfig  *HistoryConfig // History limits (nil for default)
	ColorScheme    *ColorScheme   // Color scheme (nil for default)
	KeyMap         *KeyMap        // Key bindings (nil for default)
	Device         string         // Terminal device path (empty for the controlling terminal)
	Output         io.Writer      // Output writer (nil for stdout)
	Terminal       Terminal       // Pre-opened terminal, overrides Device
}

// Option represents a configuration option for the editor
type Option func(*Config)

// WithCompleter sets the completion function
func WithCompleter(completer func(Document) (int, []Suggestion, error)) Option {
	return func(c *Config) {
		c.Completer = completer
	}
}

// WithHighlighter sets the function producing the display form of the line
func WithHighlighter(highlighter func(line string, pos int) string) Option {
	return func(c *Config) {
		c.Highlighter = highlighter
	}
}

// WithHinter sets the function producing the hint shown after the input
func WithHinter(hinter func(line string, pos int) string) Option {
	return func(c *Config) {
		c.Hinter = hinter
	}
}

// WithValidator sets the function deciding whether Enter submits the line
func WithValidator(validator func(line string) Validation) Option {
	return func(c *Config) {
		c.Validator = validator
	}
}

// WithCompletionType sets how several candidates are presented
func WithCompletionType(t CompletionType) Option {
	return func(c *Config) {
		c.CompletionType = t
	}
}

// WithTabStop sets the tab width in columns
func WithTabStop(width int) Option {
	return func(c *Config) {
		c.TabStop = width
	}
}

// WithBracketedPaste enables or disables bracketed paste mode
func WithBracketedPaste(enabled bool) Option {
	return func(c *Config) {
		c.BracketedPaste = enabled
	}
}

// WithHistory sets the history limits
func WithHistory(config *HistoryConfig) Option {
	return func(c *Config) {
		c.HistoryConfig = config
	}
}

// WithColorScheme sets the color scheme
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithKeyMap sets the key bindings
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithDevice sets the terminal device to open instead of the controlling terminal
func WithDevice(path string) Option {
	return func(c *Config) {
		c.Device = path
	}
}

// WithOutput sets the writer the prompt block is drawn to
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithTerminal uses an already opened terminal
func WithTerminal(t Terminal) Option {
	return func(c *Config) {
		c.Terminal = t
	}
}

// Editor is a stateful line editor. It is not safe for concurrent use.
type Editor struct {
	config   Config
	output   io.Writer
	history  *History
	buffer   []rune
	cursor   int
	renderer *renderer
	terminal Terminal
	keyMap   *KeyMap
	closed   bool
}

// session is the state of one ReadLine call.
type session struct {
	prefix          string
	entries         []string // history snapshot, oldest first
	historyIndex    int
	pending         string // line being edited before history navigation started
	suggestions     []Suggestion
	completionStart int // rune index replaced when a suggestion is accepted
	selected        int
	offset          int
	message         string
	cycle           *cycleState
}

// cycleState tracks circular completion between consecutive Tab presses.
type cycleState struct {
	start      int
	original   []rune
	candidates []Suggestion
	index      int
	length     int
}

func (s *session) clearSuggestions() {
	s.suggestions = nil
	s.selected = 0
	s.offset = 0
}

// New creates an editor. The terminal is opened on the first ReadLine.
func New(options ...Option) *Editor {
	config := Config{TabStop: 8}
	for _, option := range options {
		option(&config)
	}

	if config.ColorScheme == nil {
		config.ColorScheme = ThemeDefault
	}
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}
	if config.TabStop <= 0 {
		config.TabStop = 8
	}

	output := config.Output
	if output == nil {
		output = os.Stdout
		if runtime.GOOS == "windows" {
			// Use colorable for Windows ANSI color support
			output = colorable.NewColorableStdout()
		}
	}

	e := &Editor{
		config:   config,
		output:   output,
		history:  NewHistory(config.HistoryConfig),
		terminal: config.Terminal,
		keyMap:   config.KeyMap,
	}
	e.renderer = newRenderer(output, config.ColorScheme, config.TabStop)
	return e
}

// History returns the live history of the editor.
func (e *Editor) History() *History {
	return e.history
}

// ReadLine reads one line, see ReadLineContext.
func (e *Editor) ReadLine(prefix string) (string, error) {
	return e.ReadLineContext(context.Background(), prefix)
}

// ReadLineContext shows prefix and edits a line until it is submitted.
//
// It returns ErrInterrupted on Ctrl+C, ErrEOF on Ctrl+D with an empty line or
// at end of input, ErrInvalidUTF8 when the terminal delivers undecodable
// bytes, an *IOError when the terminal fails, the completer's error when it
// fails, and ctx.Err() once ctx is done (checked between keystrokes).
func (e *Editor) ReadLineContext(ctx context.Context, prefix string) (string, error) {
	if e.closed {
		return "", &IOError{Op: "read", Err: ErrClosed}
	}
	if err := e.openTerminal(); err != nil {
		return "", err
	}
	if err := e.terminal.SetRaw(); err != nil {
		return "", &IOError{Op: "set raw mode", Err: err}
	}
	defer func() {
		if e.config.BracketedPaste {
			fmt.Fprint(e.output, bracketedPasteOff)
		}
		if err := e.terminal.Restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", err)
		}
	}()

	if e.config.BracketedPaste {
		fmt.Fprint(e.output, bracketedPasteOn)
	} else {
		fmt.Fprint(e.output, bracketedPasteOff)
	}

	s := &session{
		prefix:  prefix,
		entries: e.history.Entries(),
	}
	s.historyIndex = len(s.entries)
	e.buffer = []rune{}
	e.cursor = 0
	if err := e.render(s); err != nil {
		return "", err
	}

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		r, err := e.readRune()
		if err != nil {
			if errors.Is(err, ErrEOF) {
				_ = e.renderer.newline()
			}
			return "", err
		}

		var action KeyAction
		if r == '\x1b' {
			seq, err := e.readEscapeSequence()
			if err != nil {
				return "", err
			}
			action = e.keyMap.GetSequenceAction(seq)
		} else {
			action = e.keyMap.GetAction(r)
		}

		if action != ActionComplete {
			s.cycle = nil
		}
		s.message = ""

		switch action {
		case ActionSubmit:
			// With a list open Enter accepts the selection and keeps editing
			if len(s.suggestions) > 0 {
				e.acceptSuggestion(s.completionStart, s.suggestions[s.selected])
				s.clearSuggestions()
				break
			}
			line := string(e.buffer)
			if e.config.Validator != nil {
				v := e.config.Validator(line)
				if v.Kind == ValidationIncomplete {
					e.insertRune('\n')
					break
				}
				if v.Kind == ValidationInvalid {
					s.message = v.Message
					break
				}
			}
			if err := e.finish(s, ""); err != nil {
				return "", err
			}
			return line, nil

		case ActionCancel:
			if err := e.finish(s, "^C"); err != nil {
				return "", err
			}
			return "", ErrInterrupted

		case ActionEOF:
			if len(e.buffer) == 0 {
				if err := e.finish(s, ""); err != nil {
					return "", err
				}
				return "", ErrEOF
			}
			e.deleteForward()
			s.clearSuggestions()

		case ActionMoveLeft:
			if e.cursor > 0 {
				e.cursor--
			}

		case ActionMoveRight:
			if len(s.suggestions) > 0 {
				e.acceptSuggestion(s.completionStart, s.suggestions[s.selected])
				s.clearSuggestions()
			} else if e.cursor < len(e.buffer) {
				e.cursor++
			}

		case ActionMoveUp:
			switch {
			case len(s.suggestions) > 0:
				if s.selected > 0 {
					s.selected--
					if s.selected < s.offset {
						s.offset = s.selected
					}
				}
			case e.isMultiLine() && e.findLineStart() > 0:
				e.cursor = e.findCursorUp()
			case s.historyIndex > 0:
				if s.historyIndex == len(s.entries) {
					s.pending = string(e.buffer)
				}
				s.historyIndex--
				e.setBuffer(s.entries[s.historyIndex])
			}

		case ActionMoveDown:
			switch {
			case len(s.suggestions) > 0:
				if s.selected < len(s.suggestions)-1 {
					s.selected++
					if rows := e.maxSuggestionRows(); s.selected >= s.offset+rows {
						s.offset = s.selected - rows + 1
					}
				}
			case e.isMultiLine() && e.findLineEnd() < len(e.buffer):
				e.cursor = e.findCursorDown()
			case s.historyIndex < len(s.entries):
				s.historyIndex++
				if s.historyIndex == len(s.entries) {
					e.setBuffer(s.pending)
				} else {
					e.setBuffer(s.entries[s.historyIndex])
				}
			}

		case ActionMoveHome:
			if e.isMultiLine() {
				e.cursor = e.findLineStart()
			} else {
				e.cursor = 0
			}

		case ActionMoveEnd:
			if e.isMultiLine() {
				e.cursor = e.findLineEnd()
			} else {
				e.cursor = len(e.buffer)
			}

		case ActionMoveWordLeft:
			e.cursor = e.findWordBoundary(-1)

		case ActionMoveWordRight:
			e.cursor = e.findWordBoundary(1)

		case ActionDeleteChar:
			if e.cursor > 0 {
				e.buffer = append(e.buffer[:e.cursor-1], e.buffer[e.cursor:]...)
				e.cursor--
				s.clearSuggestions()
			}

		case ActionDeleteForward:
			e.deleteForward()
			s.clearSuggestions()

		case ActionDeleteLine:
			e.buffer = []rune{}
			e.cursor = 0
			s.clearSuggestions()

		case ActionDeleteToEnd:
			if e.isMultiLine() {
				lineEnd := e.findLineEnd()
				e.buffer = append(e.buffer[:e.cursor], e.buffer[lineEnd:]...)
			} else {
				e.buffer = e.buffer[:e.cursor]
			}
			s.clearSuggestions()

		case ActionDeleteWordBack:
			if e.cursor > 0 {
				newPos := e.findWordBoundary(-1)
				e.buffer = append(e.buffer[:newPos], e.buffer[e.cursor:]...)
				e.cursor = newPos
				s.clearSuggestions()
			}

		case ActionComplete:
			if err := e.handleComplete(s); err != nil {
				return "", err
			}

		case ActionHistorySearch:
			s.clearSuggestions()
			result, ok, err := e.searchHistory(s)
			if err != nil {
				return "", err
			}
			if ok {
				e.setBuffer(result)
				s.historyIndex = len(s.entries)
			}

		case ActionNewLine:
			e.insertRune('\n')
			s.clearSuggestions()

		case ActionPaste:
			text, err := e.readPaste()
			if err != nil {
				return "", err
			}
			e.insertText(text)
			s.clearSuggestions()

		default:
			// Regular character input
			if r >= 32 && r < 127 || r > 127 {
				e.insertRune(r)
				s.clearSuggestions()
				s.historyIndex = len(s.entries)
			}
		}

		if err := e.render(s); err != nil {
			return "", err
		}
	}
}

// Close releases the terminal. It is safe to call Close multiple times.
func (e *Editor) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if e.terminal != nil {
		return e.terminal.Close()
	}
	return nil
}

func (e *Editor) openTerminal() error {
	if e.terminal != nil {
		return nil
	}
	t, err := newRealTerminal(e.config.Device)
	if err != nil {
		return &IOError{Op: "open", Err: err}
	}
	e.terminal = t
	return nil
}

func (e *Editor) handleComplete(s *session) error {
	if e.config.Completer == nil {
		// Without a completer Tab is ordinary input
		e.insertRune('\t')
		return nil
	}
	if len(s.suggestions) > 0 {
		// Tab accepts the currently selected suggestion
		e.acceptSuggestion(s.completionStart, s.suggestions[s.selected])
		s.clearSuggestions()
		return nil
	}
	if s.cycle != nil {
		e.cycleNext(s.cycle)
		return nil
	}

	start, candidates, err := e.complete()
	if err != nil {
		return err
	}
	switch {
	case len(candidates) == 0:
	case len(candidates) == 1:
		e.acceptSuggestion(start, candidates[0])
	case e.config.CompletionType == completionCircular:
		s.cycle = &cycleState{
			start:      start,
			original:   append([]rune{}, e.buffer[start:e.cursor]...),
			candidates: candidates,
			index:      -1,
			length:     e.cursor - start,
		}
		e.cycleNext(s.cycle)
	default:
		e.insertCommonPrefix(start, candidates)
		s.suggestions = candidates
		s.completionStart = start
		s.selected = 0
		s.offset = 0
	}
	return nil
}

// complete runs the completer and converts its byte offset to a rune index.
func (e *Editor) complete() (int, []Suggestion, error) {
	text := string(e.buffer)
	pos := len(string(e.buffer[:e.cursor]))
	start, candidates, err := e.config.Completer(Document{Text: text, CursorPosition: pos})
	if err != nil {
		return 0, nil, err
	}
	start = max(0, min(start, pos))
	return utf8.RuneCountInString(text[:start]), candidates, nil
}

func (e *Editor) cycleNext(c *cycleState) {
	c.index++
	if c.index > len(c.candidates) {
		c.index = 0
	}
	text := c.original
	if c.index < len(c.candidates) {
		text = []rune(c.candidates[c.index].Text)
	}
	e.replaceRange(c.start, c.start+c.length, text)
	c.length = len(text)
}

// insertCommonPrefix extends the typed word to the longest prefix shared by
// all candidates.
func (e *Editor) insertCommonPrefix(start int, candidates []Suggestion) {
	typed := string(e.buffer[start:e.cursor])
	prefix := []rune(candidates[0].Text)
	for _, c := range candidates[1:] {
		other := []rune(c.Text)
		n := 0
		for n < len(prefix) && n < len(other) && prefix[n] == other[n] {
			n++
		}
		prefix = prefix[:n]
	}
	if p := string(prefix); len(p) > len(typed) && strings.HasPrefix(p, typed) {
		e.replaceRange(start, e.cursor, prefix)
	}
}

func (e *Editor) acceptSuggestion(start int, suggestion Suggestion) {
	e.replaceRange(start, e.cursor, []rune(suggestion.Text))
}

// replaceRange replaces buffer[from:to] with text and puts the cursor after it.
func (e *Editor) replaceRange(from, to int, text []rune) {
	to = min(to, len(e.buffer))
	from = max(0, min(from, to))
	rest := append([]rune{}, e.buffer[to:]...)
	e.buffer = append(append(e.buffer[:from], text...), rest...)
	e.cursor = from + len(text)
}

// finish redraws the final state of the line without hints or lists, appends
// marker and ends the block.
func (e *Editor) finish(s *session, marker string) error {
	e.cursor = len(e.buffer)
	v := view{prefix: s.prefix, input: e.buffer, cursor: e.cursor, width: e.width()}
	if e.config.Highlighter != nil {
		v.highlighted = e.config.Highlighter(string(e.buffer), len(string(e.buffer)))
	}
	if err := e.renderer.render(v); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	if marker != "" {
		if _, err := io.WriteString(e.output, marker); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}
	if err := e.renderer.newline(); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

func (e *Editor) render(s *session) error {
	line := string(e.buffer)
	pos := len(string(e.buffer[:e.cursor]))
	v := view{
		prefix:         s.prefix,
		input:          e.buffer,
		cursor:         e.cursor,
		message:        s.message,
		suggestions:    s.suggestions,
		selected:       s.selected,
		offset:         s.offset,
		maxSuggestions: e.maxSuggestionRows(),
		width:          e.width(),
	}
	if e.config.Highlighter != nil {
		v.highlighted = e.config.Highlighter(line, pos)
	}
	if e.config.Hinter != nil {
		v.hint = e.config.Hinter(line, pos)
	}
	if err := e.renderer.render(v); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// width is the number of terminal columns.
func (e *Editor) width() int {
	width, _, _ := e.terminal.Size()
	return width
}

// maxSuggestionRows is the number of list rows that fit below the input.
func (e *Editor) maxSuggestionRows() int {
	_, height, _ := e.terminal.Size()
	return max(1, min(maxDisplayedSuggestions, height-2))
}

// searchHistory implements reverse history search (like Ctrl+R in bash).
// It returns the chosen entry and whether one was chosen.
func (e *Editor) searchHistory(s *session) (string, bool, error) {
	const shown = 5

	recent := make([]string, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		recent = append(recent, s.entries[i])
	}
	search := func(query string) []Suggestion {
		matches := fuzzy.Rank(query, recent, true)
		out := make([]Suggestion, len(matches))
		for i, m := range matches {
			out[i] = Suggestion{Text: m.Text}
		}
		return out
	}

	query := []rune{}
	results := search("")
	selected := 0

	for {
		current := ""
		if selected < len(results) {
			current = results[selected].Text
		}
		v := view{
			prefix:         fmt.Sprintf("(reverse-i-search)`%s': ", string(query)),
			input:          []rune(current),
			cursor:         len([]rune(current)),
			suggestions:    results,
			selected:       selected,
			offset:         max(0, selected-shown+1),
			maxSuggestions: shown,
			width:          e.width(),
		}
		if err := e.renderer.render(v); err != nil {
			return "", false, &IOError{Op: "write", Err: err}
		}

		r, err := e.readRune()
		if err != nil {
			return "", false, err
		}

		switch r {
		case '\r', '\n': // Enter - accept selection
			if selected < len(results) {
				return results[selected].Text, true, nil
			}
			return "", false, nil

		case '\x03', '\x07': // Ctrl+C or Ctrl+G - cancel search
			return "", false, nil

		case '\x1b': // Escape or a navigation key - cancel search
			if _, err := e.readEscapeSequence(); err != nil {
				return "", false, err
			}
			return "", false, nil

		case '\x7f', '\b': // Backspace
			if len(query) > 0 {
				query = query[:len(query)-1]
				results = search(string(query))
				selected = 0
			}

		case '\t', '\x12': // Tab or Ctrl+R - next result
			if len(results) > 0 {
				selected = (selected + 1) % len(results)
			}

		default:
			if r >= 32 && r < 127 || r > 127 {
				query = append(query, r)
				results = search(string(query))
				selected = 0
			}
		}
	}
}

// readPaste reads a bracketed paste up to its end marker. Carriage returns
// become newlines and other escape sequences are dropped.
func (e *Editor) readPaste() (string, error) {
	var b []rune
	for {
		r, err := e.readRune()
		if err != nil {
			return "", err
		}
		if r == '\x1b' {
			seq, err := e.readEscapeSequence()
			if err != nil {
				return "", err
			}
			if seq == pasteEnd {
				return string(b), nil
			}
			continue
		}
		if r == '\r' {
			r = '\n'
		}
		b = append(b, r)
	}
}

func (e *Editor) readRune() (rune, error) {
	r, _, err := e.terminal.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrEOF
		}
		return 0, &IOError{Op: "read", Err: err}
	}
	if r == utf8.RuneError {
		return 0, ErrInvalidUTF8
	}
	return r, nil
}

// readEscapeSequence reads the rest of a sequence after ESC: CSI sequences
// ("[" parameters final-byte), SS3 sequences ("O" letter) and Alt+key pairs.
func (e *Editor) readEscapeSequence() (string, error) {
	seq := make([]rune, 0, 8)
	for range 16 { // Limit to prevent an endless sequence
		r, err := e.readRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)

		if len(seq) == 1 {
			if r != '[' && r != 'O' {
				return string(seq), nil
			}
			continue
		}
		if seq[0] == 'O' || (r >= 0x40 && r <= 0x7e) {
			return string(seq), nil
		}
	}
	return string(seq), nil
}

func (e *Editor) insertRune(r rune) {
	e.buffer = append(e.buffer[:e.cursor], append([]rune{r}, e.buffer[e.cursor:]...)...)
	e.cursor++
}

func (e *Editor) insertText(text string) {
	runes := []rune(text)
	e.buffer = append(e.buffer[:e.cursor], append(runes, e.buffer[e.cursor:]...)...)
	e.cursor += len(runes)
}

func (e *Editor) setBuffer(text string) {
	e.buffer = []rune(text)
	e.cursor = len(e.buffer)
}

func (e *Editor) deleteForward() {
	if e.cursor < len(e.buffer) {
		e.buffer = append(e.buffer[:e.cursor], e.buffer[e.cursor+1:]...)
	}
}

// findWordBoundary finds the next word boundary in the given direction.
//
//	direction > 0 (Ctrl+Right): skip separators, then the word, stop after it
//	direction < 0 (Ctrl+Left, Ctrl+W): step back over separators, then to the
//	start of the previous word
func (e *Editor) findWordBoundary(direction int) int {
	if direction > 0 {
		pos := e.cursor
		for pos < len(e.buffer) && !isWordChar(e.buffer[pos]) {
			pos++
		}
		for pos < len(e.buffer) && isWordChar(e.buffer[pos]) {
			pos++
		}
		return pos
	}
	pos := e.cursor
	if pos > 0 {
		pos--
	}
	for pos > 0 && !isWordChar(e.buffer[pos]) {
		pos--
	}
	for pos > 0 && isWordChar(e.buffer[pos-1]) {
		pos--
	}
	return pos
}

// isWordChar reports whether r belongs to a word: letters, digits and underscore.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (e *Editor) isMultiLine() bool {
	return slices.Contains(e.buffer, '\n')
}

// findLineStart finds the start of the current line
func (e *Editor) findLineStart() int {
	pos := e.cursor
	for pos > 0 && e.buffer[pos-1] != '\n' {
		pos--
	}
	return pos
}

// findLineEnd finds the end of the current line
func (e *Editor) findLineEnd() int {
	pos := e.cursor
	for pos < len(e.buffer) && e.buffer[pos] != '\n' {
		pos++
	}
	return pos
}

// findCursorUp moves cursor to the same column on the previous line
func (e *Editor) findCursorUp() int {
	lineStart := e.findLineStart()
	if lineStart == 0 {
		return e.cursor
	}
	column := e.cursor - lineStart

	prevLineEnd := lineStart - 1 // Skip the newline
	prevLineStart := 0
	for i := prevLineEnd - 1; i >= 0; i-- {
		if e.buffer[i] == '\n' {
			prevLineStart = i + 1
			break
		}
	}

	if column < prevLineEnd-prevLineStart {
		return prevLineStart + column
	}
	return prevLineEnd
}

// findCursorDown moves cursor to the same column on the next line
func (e *Editor) findCursorDown() int {
	lineStart := e.findLineStart()
	lineEnd := e.findLineEnd()
	if lineEnd >= len(e.buffer) {
		return e.cursor
	}
	column := e.cursor - lineStart

	nextLineStart := lineEnd + 1 // Skip the newline
	nextLineEnd := len(e.buffer)
	for i := nextLineStart; i < len(e.buffer); i++ {
		if e.buffer[i] == '\n' {
			nextLineEnd = i
			break
		}
	}

	if column < nextLineEnd-nextLineStart {
		return nextLineStart + column
	}
	return nextLineEnd
}
