// Package main provides the entry point for the grain CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/grain/internal/output"
)

// newSayCmd creates the say command.
func newSayCmd() *cobra.Command {
	var levelFlag string
	cmd := &cobra.Command{
		Use:   "say [message...]",
		Short: "Print a styled leveled message",
		Long: `Print a message with the style of one of the output levels.

On a terminal the message gets the level's prefix glyph and color; when
piped it is written plainly. Error-level messages go to stderr. Under
--json no message is printed at all.

Examples:
  grain say "building image"
  grain say --level success "image pushed"
  grain say --level error "push failed"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSay(levelFlag, args)
		},
	}
	cmd.Flags().StringVarP(&levelFlag, "level", "l", "normal", "Message level: normal, detail, success, warn, error")
	return cmd
}

// runSay executes the say command.
func runSay(levelName string, args []string) error {
	level, err := output.ParseLevel(levelName)
	if err != nil {
		return output.NewUserError(err.Error())
	}

	msg := strings.Join(args, " ")
	switch level {
	case output.LevelDetail:
		output.Detail(msg)
	case output.LevelSuccess:
		output.Success(msg)
	case output.LevelWarn:
		output.Warn(msg)
	case output.LevelError:
		output.Error(msg)
	case output.LevelPrompt:
		return output.NewUserError("level prompt is reserved for interactive prompts")
	default:
		output.Print(msg)
	}
	return nil
}
