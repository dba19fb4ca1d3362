package editor

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// maxDisplayedSuggestions limits the number of completion rows drawn below the input.
const maxDisplayedSuggestions = 10

// renderer draws the prompt block: prefix, input lines, hint, validation
// message and completion list.
//
// Every render first moves back to the top of the previously drawn block and
// erases it, so the block can grow and shrink between keystrokes. Column
// arithmetic uses display widths (wide runes count as two columns) and expands
// tab characters to the configured tab stop.
type renderer struct {
	output      io.Writer    // Target output writer (typically stdout or colorable wrapper)
	colorScheme *ColorScheme // Color configuration for themed rendering
	tabStop     int          // Columns per tab stop
	cursorRow   int          // Row of the cursor inside the last rendered block
}

// view is one frame of the prompt block.
type view struct {
	prefix         string
	input          []rune
	cursor         int
	highlighted    string // display form of input; empty means plain
	hint           string
	message        string
	suggestions    []Suggestion
	selected       int
	offset         int
	maxSuggestions int
	width          int // terminal columns; 0 disables wrap accounting
}

// newRenderer creates a new renderer with the given output and color scheme.
func newRenderer(output io.Writer, colorScheme *ColorScheme, tabStop int) *renderer {
	if colorScheme == nil {
		colorScheme = ThemeDefault
	}
	if tabStop <= 0 {
		tabStop = 8
	}
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
		tabStop:     tabStop,
	}
}

// render redraws the block for v and leaves the terminal cursor at the
// editing position.
func (r *renderer) render(v view) error {
	var b strings.Builder
	cs := r.colorScheme

	r.clearPrevious(&b)

	// Prefix, possibly spanning several rows.
	prefixLines := strings.Split(v.prefix, "\n")
	prefixRows := 0
	for i, pl := range prefixLines {
		if i > 0 {
			b.WriteString("\r\n")
		}
		b.WriteString(cs.paint(cs.Prefix, pl))
		if i < len(prefixLines)-1 {
			prefixRows += wrappedRows(displayWidth(pl, 0, r.tabStop), v.width)
		}
	}
	prefixWidth := displayWidth(prefixLines[len(prefixLines)-1], 0, r.tabStop)

	lines := splitIntoLines(string(v.input))
	display := lines
	highlighted := false
	if v.highlighted != "" {
		if hl := splitIntoLines(v.highlighted); len(hl) == len(lines) {
			display = hl
			highlighted = true
		}
	}
	hint := firstLine(v.hint)

	cursorLine, cursorCol := findCursorPosition(v.input, v.cursor)
	lineRunes := []rune(lines[cursorLine])
	if cursorCol > len(lineRunes) {
		cursorCol = len(lineRunes)
	}
	cursorCols := prefixWidth + displayWidth(string(lineRunes[:cursorCol]), prefixWidth, r.tabStop)

	// Rows taken by each input line once the terminal wraps it. A cursor
	// sitting exactly on a wrap boundary needs one more row of its own.
	inputRows := 0
	targetRow := prefixRows
	openRow := -1
	for i, line := range lines {
		cols := prefixWidth + displayWidth(line, prefixWidth, r.tabStop)
		if i == len(lines)-1 {
			cols += displayWidth(hint, cols, r.tabStop)
		}
		rows := wrappedRows(cols, v.width)
		if i == cursorLine {
			rowOffset := 0
			if v.width > 0 {
				rowOffset = cursorCols / v.width
			}
			if rowOffset >= rows {
				openRow = i
				rows = rowOffset + 1
			}
			targetRow = prefixRows + inputRows + rowOffset
		}
		inputRows += rows
	}

	for i, line := range display {
		if i > 0 {
			// Continuation lines are indented to line up with the first one
			b.WriteString("\r\n")
			b.WriteString(strings.Repeat(" ", prefixWidth))
		}
		expanded := expandTabs(line, prefixWidth, r.tabStop)
		if highlighted {
			b.WriteString(expanded)
		} else {
			b.WriteString(cs.paint(cs.Input, expanded))
		}
		if i == len(display)-1 && hint != "" {
			b.WriteString(cs.paint(cs.Hint, hint))
		}
		if i == openRow {
			b.WriteString("\r\n")
		}
	}

	rowsBelow := 0
	if msg := firstLine(v.message); msg != "" {
		b.WriteString("\r\n")
		b.WriteString(cs.paint(cs.Message, msg))
		rowsBelow += wrappedRows(displayWidth(msg, 0, r.tabStop), v.width)
	}
	rowsBelow += r.writeSuggestions(&b, v)

	// Position the cursor.
	lastRow := prefixRows + inputRows - 1 + rowsBelow
	if up := lastRow - targetRow; up > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", up)
	}
	b.WriteString("\r")
	col := cursorCols
	if v.width > 0 {
		col %= v.width
	}
	if col > 0 {
		fmt.Fprintf(&b, "\x1b[%dC", col)
	}

	r.cursorRow = targetRow
	_, err := io.WriteString(r.output, b.String())
	return err
}

// wrappedRows returns the number of terminal rows a line of cols columns
// occupies. A width of 0 disables wrapping.
func wrappedRows(cols, width int) int {
	if width <= 0 || cols <= width {
		return 1
	}
	return (cols + width - 1) / width
}

// writeSuggestions draws the visible window of suggestions and returns the
// number of rows written.
func (r *renderer) writeSuggestions(b *strings.Builder, v view) int {
	n := len(v.suggestions)
	if n == 0 {
		return 0
	}
	cs := r.colorScheme

	limit := v.maxSuggestions
	if limit <= 0 || limit > maxDisplayedSuggestions {
		limit = maxDisplayedSuggestions
	}
	start := v.offset
	if start > n-limit {
		start = n - limit
	}
	if start < 0 {
		start = 0
	}
	end := min(n, start+limit)

	rows := 0
	for i := start; i < end; i++ {
		s := v.suggestions[i]
		label := s.Text
		if s.Display != "" {
			label = s.Display
		}
		marker := "  "
		if i == v.selected {
			marker = "▶ "
		}
		b.WriteString("\r\n")
		if i == v.selected {
			b.WriteString(cs.paint(cs.Selected, marker+label))
		} else {
			b.WriteString(cs.paint(cs.Suggestion.Text, marker+label))
		}
		cols := displayWidth(marker+label, 0, r.tabStop)
		if s.Description != "" {
			b.WriteString(" ")
			b.WriteString(cs.paint(cs.Suggestion.Description, "- "+s.Description))
			cols += 1 + displayWidth("- "+s.Description, cols+1, r.tabStop)
		}
		rows += wrappedRows(cols, v.width)
	}
	return rows
}

// clearPrevious moves to the first row of the last block and erases
// everything from there to the end of the screen.
func (r *renderer) clearPrevious(b *strings.Builder) {
	if r.cursorRow > 0 {
		fmt.Fprintf(b, "\x1b[%dA", r.cursorRow)
	}
	b.WriteString("\r\x1b[J")
}

// newline ends the current block; the next render starts a fresh one.
func (r *renderer) newline() error {
	r.cursorRow = 0
	_, err := io.WriteString(r.output, "\r\n")
	return err
}

// splitIntoLines splits the input into lines; empty input is one empty line.
func splitIntoLines(input string) []string {
	if input == "" {
		return []string{""}
	}
	return strings.Split(input, "\n")
}

// findCursorPosition returns the 0-indexed line and column (in runes) of
// cursor within inputRunes.
func findCursorPosition(inputRunes []rune, cursor int) (line, col int) {
	if cursor <= 0 {
		return 0, 0
	}
	if cursor > len(inputRunes) {
		cursor = len(inputRunes)
	}
	col = cursor
	for i := range cursor {
		if inputRunes[i] == '\n' {
			line++
			col = cursor - i - 1
		}
	}
	return line, col
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// displayWidth returns the number of columns s occupies when drawn starting
// at column startCol. Escape sequences take no space.
func displayWidth(s string, startCol, tabStop int) int {
	return walkColumns(s, startCol, tabStop, nil) - startCol
}

// expandTabs replaces each tab in s with spaces up to the next tab stop,
// counting columns from startCol. Escape sequences are copied unchanged.
func expandTabs(s string, startCol, tabStop int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	walkColumns(s, startCol, tabStop, &b)
	return b.String()
}

func walkColumns(s string, startCol, tabStop int, out *strings.Builder) int {
	col := startCol
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			j := skipEscape(s, i)
			if out != nil {
				out.WriteString(s[i:j])
			}
			i = j
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == '\t' && tabStop > 0 {
			n := tabStop - col%tabStop
			col += n
			if out != nil {
				out.WriteString(strings.Repeat(" ", n))
			}
			continue
		}
		col += runewidth.RuneWidth(r)
		if out != nil {
			out.WriteRune(r)
		}
	}
	return col
}

// skipEscape returns the index just past the escape sequence starting at i.
func skipEscape(s string, i int) int {
	if i+1 >= len(s) {
		return len(s)
	}
	if s[i+1] != '[' {
		return i + 2
	}
	j := i + 2
	for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
		j++
	}
	if j < len(s) {
		j++
	}
	return j
}
