package readline

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Result.Err for the signal variants.
var (
	// ErrEOF reports that the input stream has ended
	ErrEOF = errors.New("end of input")
	// ErrInterrupted reports that the user interrupted the read (Ctrl+C).
	// Completers may also return it to abort the read the same way.
	ErrInterrupted = errors.New("interrupted")
	// ErrInvalidEncoding reports input that is not valid UTF-8
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

// Kind identifies the variant of a Result.
type Kind int

// Result kinds. Exactly one applies to every Result.
const (
	KindLine Kind = iota
	KindEOF
	KindInterrupted
	KindIO
	KindEncoding
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindEOF:
		return "EOF"
	case KindInterrupted:
		return "Interrupted"
	case KindIO:
		return "IO"
	case KindEncoding:
		return "Encoding"
	case KindOther:
		return "Other"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of one read: either a line of text or one of the
// signals that ended the read. The zero value is an empty Line.
type Result struct {
	kind Kind
	text string
	err  error
}

// Line is a successfully read line, without its terminator.
func Line(text string) Result {
	return Result{kind: KindLine, text: text}
}

// EndOfInput reports that no more input is available.
func EndOfInput() Result {
	return Result{kind: KindEOF}
}

// Interrupted reports that the user cancelled the read.
func Interrupted() Result {
	return Result{kind: KindInterrupted}
}

// IOFailure reports an I/O failure of the input or output device.
func IOFailure(cause error) Result {
	return Result{kind: KindIO, err: cause}
}

// EncodingFailure reports input bytes that could not be decoded.
func EncodingFailure() Result {
	return Result{kind: KindEncoding}
}

// Other reports any failure that is not one of the above.
func Other(cause error) Result {
	return Result{kind: KindOther, err: cause}
}

// Kind returns the variant of r.
func (r Result) Kind() Kind {
	return r.kind
}

// Text returns the line and true when r is a Line.
func (r Result) Text() (string, bool) {
	if r.kind != KindLine {
		return "", false
	}
	return r.text, true
}

// Err returns nil for a Line, a sentinel for the EOF, Interrupted and
// Encoding variants, and the original cause for IO and Other.
func (r Result) Err() error {
	switch r.kind {
	case KindLine:
		return nil
	case KindEOF:
		return ErrEOF
	case KindInterrupted:
		return ErrInterrupted
	case KindEncoding:
		return ErrInvalidEncoding
	default:
		return r.err
	}
}

func (r Result) String() string {
	switch r.kind {
	case KindLine:
		return fmt.Sprintf("Line(%q)", r.text)
	case KindIO, KindOther:
		return fmt.Sprintf("%s(%v)", r.kind, r.err)
	default:
		return r.kind.String()
	}
}
