// Package main provides the entry point for the grain CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/grain/internal/config"
	"github.com/gorewood/grain/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the grain CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grain",
		Short: "Styled terminal output for shell scripts",
		Long: `Grain - consistent, themeable terminal output for shell scripts.

Grain gives scripts the same output layer a polished CLI has:
  - Leveled messages (normal, detail, success, warn, error) with theme styles
  - Structured values rendered as text, a tree, or JSON
  - Interactive confirmations, line input, and numbered picks
  - Automatic plain/machine fallback when output is piped

Styling comes from an optional theme file (see 'grain demo' to preview it).
All commands honor --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Every subcommand renders through the shared formatter; build it from
	// the persistent flags before the command body runs.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return installFormatter(cmd)
	}

	cmd.PersistentFlags().Bool("json", false, "Render structured values as JSON")
	cmd.PersistentFlags().Bool("tree", false, "Render structured values as a tree")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
	cmd.PersistentFlags().String("theme", "", "Theme file (default: <config dir>/theme.yaml)")
	cmd.MarkFlagsMutuallyExclusive("json", "tree")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommands(cmd)

	return cmd
}

// installFormatter resolves the theme file and persistent flags into a
// Formatter wired to the command's streams, and installs it as the shared
// instance.
func installFormatter(cmd *cobra.Command) error {
	themePath := flagString(cmd, "theme")
	if themePath == "" {
		themePath = config.DefaultThemePath()
	}
	cfg, err := config.LoadTheme(themePath)
	if err != nil {
		return output.NewUserError(err.Error())
	}

	switch {
	case flagBool(cmd, "json"):
		cfg = cfg.WithJSONOutput()
	case flagBool(cmd, "tree"):
		cfg = cfg.WithTreeOutput()
	}

	colorMode := flagString(cmd, "color")
	f := output.NewWithStreams(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.InOrStdin())
	f = f.WithTTY(
		output.ResolveColorMode(colorMode, output.IsTTY(cmd.OutOrStdout())),
		output.ResolveColorMode(colorMode, output.IsTTY(cmd.ErrOrStderr())),
	)
	output.Set(f)
	return nil
}

// flagBool reads a boolean persistent flag from the command hierarchy.
func flagBool(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	return flag != nil && flag.Value.String() == "true"
}

// flagString reads a string persistent flag from the command hierarchy.
func flagString(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// addCommands adds all subcommands.
func addCommands(cmd *cobra.Command) {
	cmd.AddCommand(newSayCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newConfirmCmd())
	cmd.AddCommand(newInputCmd())
	cmd.AddCommand(newChooseCmd())
	cmd.AddCommand(newDemoCmd())
}
