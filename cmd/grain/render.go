// Package main provides the entry point for the grain CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/grain/internal/output"
)

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Render a YAML or JSON document",
		Long: `Render a structured document in the configured output mode.

Reads a YAML or JSON document from the given file, or from stdin when no
file is given, and renders it as text, a tree (--tree), or JSON (--json).
When stdout is piped the document is always emitted as compact JSON.

Examples:
  grain render release.yaml --tree
  kubectl get pod mypod -o json | grain render`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, args []string) error {
	var raw []byte
	var err error
	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			return output.NewSystemErrorWithCause(fmt.Sprintf("reading %s", args[0]), err)
		}
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return output.NewSystemErrorWithCause("reading stdin", err)
		}
	}

	// YAML is a superset of JSON, so one parse handles both.
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return output.NewUserError(fmt.Sprintf("parsing document: %v", err))
	}

	output.Out(doc)
	return nil
}
