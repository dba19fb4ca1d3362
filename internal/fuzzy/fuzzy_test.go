package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		candidate  string
		ignoreCase bool
		want       int
	}{
		{name: "empty input", input: "", candidate: "anything", want: 1},
		{name: "empty candidate", input: "a", candidate: "", want: 0},
		{name: "exact", input: "print", candidate: "print", want: 1000},
		{name: "prefix", input: "pri", candidate: "print", want: 830},
		{name: "substring", input: "rin", candidate: "print", want: 515},
		{name: "subsequence", input: "pnt", candidate: "print", want: 30},
		{name: "partial subsequence", input: "pz", candidate: "print", want: 10},
		{name: "no match", input: "xyz", candidate: "print", want: 0},
		{name: "case sensitive miss", input: "PRI", candidate: "print", want: 0},
		{name: "case insensitive hit", input: "PRI", candidate: "print", ignoreCase: true, want: 830},
		{name: "multibyte prefix", input: "日本", candidate: "日本語", want: 820},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Score(tt.input, tt.candidate, tt.ignoreCase))
		})
	}
}

func TestRank(t *testing.T) {
	t.Parallel()

	candidates := []string{"git status", "git commit", "ls -la", "echo git"}

	t.Run("empty input keeps order", func(t *testing.T) {
		t.Parallel()
		got := Rank("", candidates, false)
		assert.Len(t, got, len(candidates))
		for i, m := range got {
			assert.Equal(t, candidates[i], m.Text)
		}
	})

	t.Run("prefix matches first", func(t *testing.T) {
		t.Parallel()
		got := Rank("git", candidates, false)
		texts := make([]string, 0, len(got))
		for _, m := range got {
			texts = append(texts, m.Text)
		}
		assert.Equal(t, []string{"git status", "git commit", "echo git"}, texts)
	})

	t.Run("nothing matches", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Rank("zzz", candidates, false))
	})
}
