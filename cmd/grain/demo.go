// Package main provides the entry point for the grain CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/grain/internal/output"
)

// newDemoCmd creates the demo command.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Preview the active theme",
		Long: `Print a sample of every output level, nested sections, and a
structured value, using the active theme. Use it to check a theme file
before pointing scripts at it:

  grain demo --theme ./theme.yaml`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDemo()
		},
	}
}

// runDemo executes the demo command.
func runDemo() error {
	output.Print("a normal message")
	output.Detail("detail narration, shown on terminals only")
	output.Success("a success message")
	output.Warn("a warning")
	output.Error("an error, written to stderr")

	err := output.NestScope("a nested section", func() error {
		output.Print("one level deep")
		return output.NestScope("a deeper section", func() error {
			output.Success("two levels deep")
			return nil
		})
	})
	if err != nil {
		return err
	}

	output.Out(map[string]any{
		"theme":  "active",
		"modes":  []string{"text", "tree", "json"},
		"levels": 6,
	})
	return nil
}
