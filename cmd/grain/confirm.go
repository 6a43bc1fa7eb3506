// Package main provides the entry point for the grain CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/grain/internal/output"
)

// newConfirmCmd creates the confirm command.
func newConfirmCmd() *cobra.Command {
	var defaultYes bool
	cmd := &cobra.Command{
		Use:   "confirm <message>",
		Short: "Ask a yes/no question",
		Long: `Ask a yes/no question and report the answer in the exit status.

Exit status 0 means yes, 1 means no, 3 means stdout is not a terminal.
Only a literal "n" answer declines when --default-yes is set, and only a
literal "y" accepts otherwise; any other input takes the default.

Examples:
  grain confirm "Delete the staging environment?" && teardown-staging
  grain confirm --default-yes "Continue?"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runConfirm(args[0], defaultYes)
		},
	}
	cmd.Flags().BoolVar(&defaultYes, "default-yes", false, "Accept on empty input")
	return cmd
}

// runConfirm executes the confirm command.
func runConfirm(message string, defaultYes bool) error {
	yes, err := output.Current().PromptYesNo(message, defaultYes)
	if err != nil {
		return err
	}
	if !yes {
		return output.NewUserError("not confirmed")
	}
	return nil
}
