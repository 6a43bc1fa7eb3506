package output

// Mode selects how Out renders structured values.
type Mode int

const (
	// ModeText renders the value's display string. Default.
	ModeText Mode = iota
	// ModeTree renders the value as an indented tree.
	ModeTree
	// ModeJSON renders the value as JSON and suppresses all leveled prints.
	ModeJSON
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeTree:
		return "tree"
	case ModeJSON:
		return "json"
	default:
		return "text"
	}
}

// Config holds a Formatter's output mode and theme. It is a value type:
// the With* modifiers return updated copies and never mutate the receiver,
// so configs can be shared without aliasing surprises.
type Config struct {
	Output Mode
	Theme  Theme
}

// DefaultConfig returns a text-mode config with an empty theme, meaning
// every level uses its built-in default style.
func DefaultConfig() Config {
	return Config{Theme: Theme{}}
}

// WithStyle returns a copy of the config with the style for one level
// replaced. The theme map is cloned, so the original config is unchanged.
func (c Config) WithStyle(level Level, style Style) Config {
	theme := make(Theme, len(c.Theme)+1)
	for l, s := range c.Theme {
		theme[l] = s
	}
	theme[level] = style
	c.Theme = theme
	return c
}

// WithJSONOutput returns a copy of the config in JSON mode. Tree and JSON
// are mutually exclusive; selecting one overwrites the other.
func (c Config) WithJSONOutput() Config {
	c.Output = ModeJSON
	return c
}

// WithTreeOutput returns a copy of the config in tree mode.
func (c Config) WithTreeOutput() Config {
	c.Output = ModeTree
	return c
}
