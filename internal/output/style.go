package output

import "github.com/charmbracelet/lipgloss"

// Style is the visual treatment for one Level: an optional prefix glyph and
// a color applied to the whole rendered line.
type Style struct {
	Prefix string
	Color  lipgloss.Color
}

// NewStyle creates a Style with the given color and no prefix.
func NewStyle(color lipgloss.Color) Style {
	return Style{Color: color}
}

// WithPrefix returns a copy of the style with the prefix glyph set.
func (s Style) WithPrefix(prefix string) Style {
	s.Prefix = prefix
	return s
}

// Theme maps levels to styles. Levels without an entry fall back to the
// built-in defaults.
type Theme map[Level]Style

// Set inserts or overwrites the style for a level.
func (t Theme) Set(level Level, style Style) {
	t[level] = style
}

// Get returns the style for a level and whether the theme defines one.
func (t Theme) Get(level Level) (Style, bool) {
	style, ok := t[level]
	return style, ok
}

// Built-in styles used when the theme has no entry for a level.
var defaultStyles = map[Level]Style{
	LevelNormal:  {Prefix: "+", Color: lipgloss.Color("15")}, // White
	LevelPrompt:  {Prefix: "+", Color: lipgloss.Color("15")}, // White
	LevelDetail:  {Prefix: "+", Color: lipgloss.Color("15")}, // Same as Normal
	LevelSuccess: {Prefix: "✔", Color: lipgloss.Color("10")}, // Green
	LevelWarn:    {Prefix: "!", Color: lipgloss.Color("11")}, // Yellow
	LevelError:   {Prefix: "!", Color: lipgloss.Color("9")},  // Red
}

// DefaultStyle returns the built-in style for a level.
func DefaultStyle(level Level) Style {
	return defaultStyles[level]
}
