// Package main provides the entry point for the grain CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/grain/internal/output"
)

// newInputCmd creates the input command.
func newInputCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "input <message>",
		Short: "Prompt for a line of input",
		Long: `Prompt for a single line of input and echo the trimmed answer to
stdout, so scripts can capture it:

  name=$(grain input "Release name: ")

Fails with exit status 3 when stdout is not a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := output.Current().Prompt(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
			return err
		},
	}
}
