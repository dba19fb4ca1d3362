package main

import (
	"slices"
	"strings"
	"unicode"

	"github.com/nao1215/readline"
)

const (
	bold  = "\x1b[1m"
	reset = "\x1b[0m"
)

// replHelper completes and highlights keywords and keeps bracketed or
// block-opening input open across lines.
type replHelper struct {
	readline.HelperBase
	keywords   []string
	completion *readline.KeywordCompleter
}

func newReplHelper(keywords []string) replHelper {
	return replHelper{
		keywords:   keywords,
		completion: readline.NewKeywordCompleter(keywords...),
	}
}

func (h replHelper) Complete(line string, pos int) (int, []readline.Candidate, error) {
	return h.completion.Complete(line, pos)
}

// Highlight shows keywords in bold.
func (h replHelper) Highlight(line string, _ int) string {
	var b strings.Builder
	word := []rune{}
	flush := func() {
		if len(word) == 0 {
			return
		}
		w := string(word)
		if slices.Contains(h.keywords, w) {
			b.WriteString(bold + w + reset)
		} else {
			b.WriteString(w)
		}
		word = word[:0]
	}
	for _, r := range line {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			word = append(word, r)
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return b.String()
}

// Hint proposes the rest of the only keyword the last word is a prefix of.
func (h replHelper) Hint(line string, pos int) string {
	if pos != len(line) {
		return ""
	}
	start, candidates, _ := h.completion.Complete(line, pos)
	word := line[start:pos]
	if len(word) < 2 || len(candidates) != 1 {
		return ""
	}
	rest, ok := strings.CutPrefix(candidates[0].Replacement, word)
	if !ok {
		return ""
	}
	return rest
}

// Validate keeps reading while brackets are open or a block has been
// started and not yet closed with an empty line.
func (h replHelper) Validate(line string) readline.Validation {
	depth := 0
	for _, r := range line {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}
		if depth < 0 {
			return readline.Validation{Kind: readline.Invalid, Message: "unbalanced closing bracket"}
		}
	}
	if depth > 0 {
		return readline.Validation{Kind: readline.Incomplete}
	}

	lines := strings.Split(line, "\n")
	if strings.HasSuffix(strings.TrimSpace(lines[0]), ":") && strings.TrimSpace(lines[len(lines)-1]) != "" {
		return readline.Validation{Kind: readline.Incomplete}
	}
	return readline.Validation{Kind: readline.Valid}
}
