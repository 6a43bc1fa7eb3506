// Package output is the terminal formatting layer for the grain CLI.
//
// It renders leveled messages, structured values, and interactive prompts,
// adapting to whether the standard streams are attached to a terminal.
//
// # Formatter
//
// The Formatter is the primary type. It holds a Config (output mode plus
// theme), an indentation depth, and a terminal-capability snapshot taken
// once at construction:
//
//	f := output.New(output.DefaultConfig())
//	f.Print("checking remotes")
//	f.Success("all remotes reachable")
//	f.Warn("remote 'mirror' is slow")
//	f.Error("remote 'backup' unreachable")
//
// Print, Detail, Success and Warn write to stdout; Error writes to stderr.
// On an interactive stream each line gets an indent marker per nesting
// level, the level's prefix glyph, and the level's color. On a redirected
// stream the raw message is written with no decoration. Under JSON mode
// every leveled print is suppressed: JSON mode means structured machine
// output only.
//
// # Structured values
//
// Out renders any serializable value according to the configured mode:
// plain display string (text), an indented tree, or JSON. When stdout is
// not a terminal, Out always emits compact JSON regardless of the mode, so
// piped output stays machine readable.
//
// # Prompts
//
// Prompt, PromptYesNo and Pick read one line at a time from stdin. They
// fail with ErrNotInteractive when stdout is not a terminal.
//
// # Shared instance
//
// A process-wide Formatter lives behind a mutex. Commands reach it through
// Current or the package-level helpers, and NestScope temporarily installs
// a deeper-indented copy around a function:
//
//	output.NestScope("installing hooks", func() error {
//		output.Print("pre-commit")  // rendered one level deeper
//		return nil
//	})
package output
