package readline

// Candidate is one completion proposal.
type Candidate struct {
	// Replacement is inserted in place of line[start:pos].
	Replacement string
	// Display is shown in the completion list; Replacement is used when empty.
	Display string
	// Description is shown next to the candidate.
	Description string
}

// Completer proposes replacements for the text before the cursor.
type Completer interface {
	// Complete returns the byte offset where the replaced range starts and
	// the candidates. pos is the byte offset of the cursor in line. A non-nil
	// error aborts the read; ErrInterrupted turns it into Interrupted.
	Complete(line string, pos int) (start int, candidates []Candidate, err error)
}

// Highlighter returns the display form of the line. The result may carry
// ANSI SGR sequences but must not change the visible width.
type Highlighter interface {
	Highlight(line string, pos int) string
}

// Hinter returns text shown dimmed after the input, or "" for none.
type Hinter interface {
	Hint(line string, pos int) string
}

// ValidationKind is the verdict of a Validator.
type ValidationKind int

const (
	// Valid lets Enter submit the line.
	Valid ValidationKind = iota
	// Incomplete makes Enter insert a newline and continue editing.
	Incomplete
	// Invalid keeps the line in the editor and shows Validation.Message.
	Invalid
)

// Validation is the result of Validator.Validate.
type Validation struct {
	Kind    ValidationKind
	Message string
}

// Validator decides what Enter does with the current line.
type Validator interface {
	Validate(line string) Validation
}

// EditorHelper is the full set of editing capabilities the interactive
// backend consults.
type EditorHelper interface {
	Completer
	Highlighter
	Hinter
	Validator
}

// HelperBase implements every capability of EditorHelper as a no-op. Embed
// it and override only the methods you need.
type HelperBase struct{}

// Complete returns no candidates.
func (HelperBase) Complete(_ string, pos int) (int, []Candidate, error) {
	return pos, nil, nil
}

// Highlight returns the line unchanged.
func (HelperBase) Highlight(line string, _ int) string {
	return line
}

// Hint returns no hint.
func (HelperBase) Hint(string, int) string {
	return ""
}

// Validate accepts every line.
func (HelperBase) Validate(string) Validation {
	return Validation{Kind: Valid}
}

var _ EditorHelper = HelperBase{}
