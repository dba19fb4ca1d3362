package readline

import (
	"unicode"
	"unicode/utf8"

	"github.com/nao1215/readline/internal/fuzzy"
)

// KeywordCompleter completes the identifier before the cursor against a
// fixed word list. Candidates are ranked by fuzzy score: exact, prefix and
// substring matches come before scattered subsequence matches.
type KeywordCompleter struct {
	words      []string
	ignoreCase bool
}

// NewKeywordCompleter returns a case-insensitive completer for words.
func NewKeywordCompleter(words ...string) *KeywordCompleter {
	return &KeywordCompleter{
		words:      append([]string(nil), words...),
		ignoreCase: true,
	}
}

// CaseSensitive makes matching case sensitive.
func (c *KeywordCompleter) CaseSensitive() *KeywordCompleter {
	c.ignoreCase = false
	return c
}

// Complete implements Completer.
func (c *KeywordCompleter) Complete(line string, pos int) (int, []Candidate, error) {
	pos = max(0, min(pos, len(line)))

	start := pos
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(line[:start])
		if !isIdentRune(r) {
			break
		}
		start -= size
	}
	word := line[start:pos]
	if word == "" {
		return pos, nil, nil
	}

	// Every rune of the word must be matched in order
	minScore := 10 * utf8.RuneCountInString(word)
	var candidates []Candidate
	for _, m := range fuzzy.Rank(word, c.words, c.ignoreCase) {
		if m.Score < minScore {
			continue
		}
		candidates = append(candidates, Candidate{Replacement: m.Text})
	}
	return start, candidates, nil
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
