package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorToANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "plain", color: Color{R: 1, G: 2, B: 3}, want: "\x1b[38;2;1;2;3m"},
		{name: "bold", color: Color{R: 255, G: 0, B: 0, Bold: true}, want: "\x1b[1;38;2;255;0;0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.color.ToANSI())
		})
	}
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	for _, name := range ThemeNames() {
		theme, ok := ThemeByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, theme.Name)
	}

	theme, ok := ThemeByName("DRACULA")
	require.True(t, ok)
	assert.Equal(t, ThemeDracula, theme)

	_, ok = ThemeByName("solarized")
	assert.False(t, ok)

	assert.Equal(t, []string{"default", "dark", "light", "dracula", "monochrome"}, ThemeNames())
}

func TestPaint(t *testing.T) {
	t.Parallel()

	red := Color{R: 255}
	assert.Equal(t, red.ToANSI()+"x"+Reset(), ThemeDefault.paint(red, "x"))
	assert.Equal(t, "x", ThemeMonochrome.paint(red, "x"))
	assert.Equal(t, "", ThemeDefault.paint(red, ""))

	var nilScheme *ColorScheme
	assert.Equal(t, "x", nilScheme.paint(red, "x"))
}
