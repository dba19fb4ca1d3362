package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/readline"
)

func TestReplHelperValidate(t *testing.T) {
	t.Parallel()

	h := newReplHelper(defaultKeywords)

	tests := []struct {
		line string
		want readline.ValidationKind
	}{
		{line: "print(1)", want: readline.Valid},
		{line: "print(1", want: readline.Incomplete},
		{line: "[1,\n2]", want: readline.Valid},
		{line: "print(1))", want: readline.Invalid},
		{line: "def f():", want: readline.Incomplete},
		{line: "def f():\n    return 1", want: readline.Incomplete},
		{line: "def f():\n    return 1\n", want: readline.Valid},
		{line: "", want: readline.Valid},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, h.Validate(tt.line).Kind)
		})
	}
}

func TestReplHelperHighlight(t *testing.T) {
	t.Parallel()

	h := newReplHelper(defaultKeywords)

	assert.Equal(t, bold+"import"+reset+" os", h.Highlight("import os", 9))
	assert.Equal(t, "imports", h.Highlight("imports", 7))
	assert.Equal(t, "x = "+bold+"None"+reset, h.Highlight("x = None", 8))
}

func TestReplHelperHint(t *testing.T) {
	t.Parallel()

	h := newReplHelper(defaultKeywords)

	assert.Equal(t, "le", h.Hint("whi", 3))
	assert.Equal(t, "", h.Hint("w", 1), "one rune is too short")
	assert.Equal(t, "", h.Hint("whi", 2), "cursor not at end")
	// "import" also matches p..r in order
	assert.Equal(t, "", h.Hint("pr", 2))
	assert.Equal(t, "", h.Hint("zz", 2))
}

func TestReplHelperComplete(t *testing.T) {
	t.Parallel()

	h := newReplHelper(defaultKeywords)

	start, candidates, err := h.Complete("x = No", 6)
	require.NoError(t, err)
	assert.Equal(t, 4, start)
	require.NotEmpty(t, candidates)
	assert.Equal(t, "None", candidates[0].Replacement)
}
