package editor

import (
	"fmt"
	"strings"
)

// ColorScheme defines the color configuration for the editor.
type ColorScheme struct {
	Name       string           `json:"name"`
	Prefix     Color            `json:"prefix"`
	Input      Color            `json:"input"`
	Hint       Color            `json:"hint"`
	Message    Color            `json:"message"`
	Suggestion SuggestionColors `json:"suggestion"`
	Selected   Color            `json:"selected"`
	NoColor    bool             `json:"no_color"` // emit no SGR sequences at all
}

// SuggestionColors defines colors for completion suggestions.
type SuggestionColors struct {
	Text        Color `json:"text"`
	Description Color `json:"description"`
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default color scheme with green prefix and white text
var ThemeDefault = &ColorScheme{
	Name:    "default",
	Prefix:  Color{R: 0, G: 255, B: 0, Bold: true},
	Input:   Color{R: 255, G: 255, B: 255},
	Hint:    Color{R: 128, G: 128, B: 128},
	Message: Color{R: 255, G: 85, B: 85, Bold: true},
	Suggestion: SuggestionColors{
		Text:        Color{R: 200, G: 200, B: 200},
		Description: Color{R: 128, G: 128, B: 128},
	},
	Selected: Color{R: 0, G: 255, B: 255, Bold: true},
}

// ThemeDark is a dark theme with light blue prefix and off-white text
var ThemeDark = &ColorScheme{
	Name:    "dark",
	Prefix:  Color{R: 102, G: 217, B: 239, Bold: true},
	Input:   Color{R: 248, G: 248, B: 242},
	Hint:    Color{R: 98, G: 114, B: 164},
	Message: Color{R: 255, G: 184, B: 108, Bold: true},
	Suggestion: SuggestionColors{
		Text:        Color{R: 189, G: 147, B: 249},
		Description: Color{R: 98, G: 114, B: 164},
	},
	Selected: Color{R: 80, G: 250, B: 123, Bold: true},
}

// ThemeLight is a light theme with blue prefix and dark gray text
var ThemeLight = &ColorScheme{
	Name:    "light",
	Prefix:  Color{R: 0, G: 119, B: 187, Bold: true},
	Input:   Color{R: 36, G: 41, B: 46},
	Hint:    Color{R: 149, G: 157, B: 165},
	Message: Color{R: 215, G: 58, B: 73, Bold: true},
	Suggestion: SuggestionColors{
		Text:        Color{R: 88, G: 96, B: 105},
		Description: Color{R: 149, G: 157, B: 165},
	},
	Selected: Color{R: 40, G: 167, B: 69, Bold: true},
}

// ThemeDracula is the Dracula color scheme
var ThemeDracula = &ColorScheme{
	Name:    "dracula",
	Prefix:  Color{R: 255, G: 121, B: 198, Bold: true},
	Input:   Color{R: 248, G: 248, B: 242},
	Hint:    Color{R: 98, G: 114, B: 164},
	Message: Color{R: 255, G: 85, B: 85, Bold: true},
	Suggestion: SuggestionColors{
		Text:        Color{R: 139, G: 233, B: 253},
		Description: Color{R: 98, G: 114, B: 164},
	},
	Selected: Color{R: 80, G: 250, B: 123, Bold: true},
}

// ThemeMonochrome renders without any color, for NO_COLOR environments and
// terminals without SGR support.
var ThemeMonochrome = &ColorScheme{
	Name:    "monochrome",
	NoColor: true,
}

var themes = []*ColorScheme{ThemeDefault, ThemeDark, ThemeLight, ThemeDracula, ThemeMonochrome}

// ThemeByName looks a built-in theme up by its case-insensitive name.
func ThemeByName(name string) (*ColorScheme, bool) {
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return nil, false
}

// ThemeNames returns the names of the built-in themes.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}

// paint wraps s in c, or returns s unchanged for colorless schemes.
func (cs *ColorScheme) paint(c Color, s string) string {
	if cs == nil || cs.NoColor || s == "" {
		return s
	}
	return c.ToANSI() + s + Reset()
}
