// Package readline reads lines of input for an interactive REPL front-end.
//
// A Readline reads one logical line at a time and reports every outcome as a
// Result: a line of text, or one of the signals that ended the read (end of
// input, interrupt, undecodable input, I/O failure, other failure). It also
// owns a history that can be loaded from and saved to a file. Which line
// input mechanism does the work is hidden behind the Backend interface:
//
//   - native builds use the interactive backend: a terminal line editor with
//     cursor movement, history navigation and reverse search (Ctrl+R),
//     completion, highlighting, hints and multi-line validation
//   - js and wasip1 builds use the basic backend: the prompt is written to
//     stdout and one line is read from stdin, without history
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/nao1215/readline"
//	)
//
//	func main() {
//		rl := readline.New(readline.HelperBase{})
//		defer rl.Close()
//
//		history := readline.DefaultHistoryFile("myrepl")
//		_ = rl.LoadHistory(history)
//		defer rl.SaveHistory(history)
//
//		for {
//			res := rl.Readline(">>> ")
//			switch res.Kind() {
//			case readline.KindLine:
//				line, _ := res.Text()
//				_ = rl.AddHistoryEntry(line)
//				fmt.Println(line)
//			case readline.KindInterrupted:
//				fmt.Println("KeyboardInterrupt")
//			case readline.KindEncoding:
//				continue
//			default:
//				return
//			}
//		}
//	}
//
// Helpers:
//
// The helper value passed to New customizes the interactive editor. On native
// builds it must implement Completer, Highlighter, Hinter and Validator; embed
// HelperBase to get no-op versions of all four and override what you need:
//
//	type pyHelper struct {
//		readline.HelperBase
//		keywords *readline.KeywordCompleter
//	}
//
//	func (h pyHelper) Complete(line string, pos int) (int, []readline.Candidate, error) {
//		return h.keywords.Complete(line, pos)
//	}
//
//	rl := readline.New(pyHelper{keywords: readline.NewKeywordCompleter("print", "import")})
//
// A completer may return ErrInterrupted to abort the read; Readline then
// returns Interrupted.
//
// Key Bindings (interactive backend):
//
//   - Enter: Submit input (or insert a newline when the validator reports Incomplete)
//   - Alt+Enter: Insert a newline
//   - Ctrl+C: Interrupt
//   - Ctrl+D: End of input on an empty line, delete forward otherwise
//   - Ctrl+A / Home: Move to beginning of line
//   - Ctrl+E / End: Move to end of line
//   - Ctrl+K: Delete from cursor to end of line
//   - Ctrl+U: Delete entire line
//   - Ctrl+W: Delete word backwards
//   - Ctrl+R: Reverse history search
//   - Tab: Completion (a list of candidates is shown when several match)
//   - ↑/↓: Navigate history, multi-line input or the completion list
//   - Ctrl+←/→: Move by word
//
// History Files:
//
// History files start with a "#V2" line followed by one entry per line, with
// backslashes written as `\\` and newlines as `\n`. Files without the header
// are read one verbatim entry per line. SaveHistory creates missing parent
// directories, and paths starting with "~" are expanded to the home directory.
package readline
