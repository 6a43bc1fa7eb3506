// Package main provides the entry point for the grain CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/grain/internal/output"
)

// newChooseCmd creates the choose command.
func newChooseCmd() *cobra.Command {
	var header string
	cmd := &cobra.Command{
		Use:   "choose <item> [item...]",
		Short: "Pick one item from a numbered list",
		Long: `Present the items as a numbered list, prompt for a pick, and write
the chosen item to stdout:

  region=$(grain choose eu-west-1 us-east-1 ap-south-1)

Invalid picks re-prompt. Fails with exit status 3 when stdout is not a
terminal.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChoose(cmd, header, args)
		},
	}
	cmd.Flags().StringVar(&header, "header", "Pick one:", "Line printed above the list")
	return cmd
}

// runChoose executes the choose command.
func runChoose(cmd *cobra.Command, header string, items []string) error {
	picked, err := output.Pick(output.Current(), header, items)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), *picked)
	return err
}
