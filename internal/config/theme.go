package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/grain/internal/output"
)

// themeFile is the on-disk shape of a theme:
//
//	output: tree
//	levels:
//	  success:
//	    prefix: "ok"
//	    color: "42"
//	  error:
//	    prefix: "xx"
//	    color: "196"
type themeFile struct {
	Output string                `yaml:"output"`
	Levels map[string]styleEntry `yaml:"levels"`
}

type styleEntry struct {
	Prefix string `yaml:"prefix"`
	Color  string `yaml:"color"`
}

// DefaultThemePath returns the theme file path inside the config
// directory, or "" if no config directory can be resolved.
func DefaultThemePath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "theme.yaml")
}

// LoadTheme reads a theme file and builds an output configuration from it.
// A missing file (or empty path) is not an error: the built-in defaults
// apply. Unknown level names and unknown output modes are errors.
func LoadTheme(path string) (output.Config, error) {
	cfg := output.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading theme file %s: %w", path, err)
	}

	var tf themeFile
	if err := yaml.Unmarshal(raw, &tf); err != nil {
		return cfg, fmt.Errorf("parsing theme file %s: %w", path, err)
	}

	switch tf.Output {
	case "", "text":
		// text is the default
	case "tree":
		cfg = cfg.WithTreeOutput()
	case "json":
		cfg = cfg.WithJSONOutput()
	default:
		return cfg, fmt.Errorf("theme file %s: unknown output mode %q (valid: text, tree, json)", path, tf.Output)
	}

	for name, entry := range tf.Levels {
		level, err := output.ParseLevel(name)
		if err != nil {
			return cfg, fmt.Errorf("theme file %s: %w", path, err)
		}
		style := output.NewStyle(lipgloss.Color(entry.Color))
		if entry.Prefix != "" {
			style = style.WithPrefix(entry.Prefix)
		}
		cfg = cfg.WithStyle(level, style)
	}

	return cfg, nil
}
