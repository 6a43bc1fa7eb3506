package output

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss/tree"
)

// renderTree converts a value to its JSON shape and renders that shape as
// an indented tree. Map keys are sorted so output is deterministic.
// Panics if the value cannot be serialized, same contract as Out's JSON
// path.
func renderTree(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("value is not serializable: %v", err))
	}
	var shape any
	if err := json.Unmarshal(raw, &shape); err != nil {
		panic(fmt.Sprintf("value is not serializable: %v", err))
	}

	root := tree.Root(".")
	addBranch(root, shape)
	return root.String()
}

// addBranch appends the children for one JSON node to t.
func addBranch(t *tree.Tree, node any) {
	switch n := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch child := n[k].(type) {
			case map[string]any, []any:
				sub := tree.Root(k)
				addBranch(sub, child)
				t.Child(sub)
			default:
				t.Child(fmt.Sprintf("%s: %s", k, scalarString(child)))
			}
		}
	case []any:
		for _, item := range n {
			switch child := item.(type) {
			case map[string]any, []any:
				sub := tree.Root("-")
				addBranch(sub, child)
				t.Child(sub)
			default:
				t.Child(scalarString(child))
			}
		}
	default:
		t.Child(scalarString(n))
	}
}

// scalarString formats a JSON leaf value.
func scalarString(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}
