package readline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func replacements(candidates []Candidate) []string {
	var out []string
	for _, c := range candidates {
		out = append(out, c.Replacement)
	}
	return out
}

func TestKeywordCompleter(t *testing.T) {
	t.Parallel()

	words := []string{"print", "import", "pass", "property", "こんにちは"}

	tests := []struct {
		name      string
		line      string
		pos       int
		wantStart int
		want      []string
	}{
		{name: "prefix before subsequence", line: "x = pr", pos: 6, wantStart: 4, want: []string{"print", "property", "import"}},
		{name: "ignores case", line: "PR", pos: 2, wantStart: 0, want: []string{"print", "property", "import"}},
		{name: "exact match first", line: "pass", pos: 4, wantStart: 0, want: []string{"pass"}},
		{name: "cursor inside word", line: "print foo", pos: 2, wantStart: 0, want: []string{"print", "property", "import"}},
		{name: "no match", line: "zz", pos: 2, wantStart: 0, want: nil},
		{name: "empty word", line: "x = ", pos: 4, wantStart: 4, want: nil},
		{name: "empty line", line: "", pos: 0, wantStart: 0, want: nil},
		{name: "pos past end is clamped", line: "pa", pos: 10, wantStart: 0, want: []string{"pass"}},
		{name: "multibyte word", line: "x(こん", pos: len("x(こん"), wantStart: 2, want: []string{"こんにちは"}},
	}

	c := NewKeywordCompleter(words...)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, candidates, err := c.Complete(tt.line, tt.pos)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.want, replacements(candidates))
		})
	}
}

func TestKeywordCompleterCaseSensitive(t *testing.T) {
	t.Parallel()

	c := NewKeywordCompleter("Print", "print").CaseSensitive()

	_, candidates, err := c.Complete("Pr", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Print"}, replacements(candidates))
}

func TestKeywordCompleterCopiesWords(t *testing.T) {
	t.Parallel()

	words := []string{"alpha"}
	c := NewKeywordCompleter(words...)
	words[0] = "beta"

	_, candidates, err := c.Complete("al", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, replacements(candidates))
}
