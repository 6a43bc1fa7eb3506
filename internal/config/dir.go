// Package config locates and loads the grain configuration: the config
// directory and the optional theme file inside it.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the grain configuration directory.
//
// Resolution:
//   - $GRAIN_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/grain if set (respects XDG on any platform)
//   - %AppData%/grain on Windows
//   - ~/.config/grain on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("GRAIN_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "grain")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "grain")
		}
	}

	// macOS and Linux: ~/.config/grain
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "grain")
}
