package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// indentMarker is prepended once per nesting level on interactive streams.
const indentMarker = "    "

// Formatter renders leveled messages, structured values, and interactive
// prompts. The terminal-capability flags are captured once at construction
// and never re-probed: behavior is stable for the lifetime of an instance
// even if a stream is redirected later.
//
// A Formatter is never mutated after construction. Nest and WithTTY return
// modified copies, which is what makes the shared-instance save/restore in
// NestScope safe.
type Formatter struct {
	cfg    Config
	indent int

	stdout io.Writer
	stderr io.Writer
	in     *bufio.Reader

	stdoutTTY bool
	stderrTTY bool
}

// New creates a Formatter on the process's standard streams, probing
// stdout and stderr for terminal capability.
func New(cfg Config) *Formatter {
	return NewWithStreams(cfg, os.Stdout, os.Stderr, os.Stdin)
}

// NewWithStreams creates a Formatter on explicit streams. Each writer is
// probed independently; non-file writers (buffers, pipes) probe as
// non-interactive.
func NewWithStreams(cfg Config, stdout, stderr io.Writer, stdin io.Reader) *Formatter {
	return &Formatter{
		cfg:       cfg,
		stdout:    stdout,
		stderr:    stderr,
		in:        bufio.NewReader(stdin),
		stdoutTTY: IsTTY(stdout),
		stderrTTY: IsTTY(stderr),
	}
}

// WithTTY returns a copy with the terminal-capability snapshot overridden.
// Callers that resolve a --color flag use this to force decoration on or
// off regardless of the probe.
func (f *Formatter) WithTTY(stdoutTTY, stderrTTY bool) *Formatter {
	c := *f
	c.stdoutTTY = stdoutTTY
	c.stderrTTY = stderrTTY
	return &c
}

// Nest returns a copy of the formatter one indent level deeper. The
// receiver is unchanged.
func (f *Formatter) Nest() *Formatter {
	c := *f
	c.indent++
	return &c
}

// Print renders a normal-level message to stdout.
func (f *Formatter) Print(msg string) {
	f.levelPrint(LevelNormal, msg)
}

// Detail renders decorative narration to stdout. It is a no-op when stdout
// is not a terminal: detail output is never essential and would only add
// noise to piped output.
func (f *Formatter) Detail(msg string) {
	if !f.stdoutTTY {
		return
	}
	f.levelPrint(LevelDetail, msg)
}

// Success renders a success-level message to stdout.
func (f *Formatter) Success(msg string) {
	f.levelPrint(LevelSuccess, msg)
}

// Warn renders a warning-level message to stdout.
func (f *Formatter) Warn(msg string) {
	f.levelPrint(LevelWarn, msg)
}

// Error renders an error-level message to stderr.
func (f *Formatter) Error(msg string) {
	f.levelPrint(LevelError, msg)
}

// levelPrint is the shared path for all leveled operations. Every level,
// Error included, is suppressed under JSON mode: JSON mode means
// structured machine output only.
func (f *Formatter) levelPrint(level Level, msg string) {
	if f.cfg.Output == ModeJSON {
		return
	}
	w, tty := f.stdout, f.stdoutTTY
	if level == LevelError {
		w, tty = f.stderr, f.stderrTTY
	}
	if !tty {
		// Plain fallback for piping/redirection: no color, no prefix,
		// no indentation.
		mustWrite(fmt.Fprintln(w, msg))
		return
	}
	mustWrite(fmt.Fprintln(w, f.compose(level, msg)))
}

// compose builds the decorated form of a message: indent markers, the
// level's prefix glyph, then the message, with the level's color applied
// to the whole line.
func (f *Formatter) compose(level Level, msg string) string {
	style, ok := f.cfg.Theme.Get(level)
	if !ok {
		style = DefaultStyle(level)
	}
	line := strings.Repeat(indentMarker, f.indent)
	if style.Prefix != "" {
		line += style.Prefix + " "
	}
	line += msg
	return lipgloss.NewStyle().Foreground(style.Color).Render(line)
}

// Out renders a structured value according to the configured mode. When
// stdout is not a terminal the value is always emitted as compact JSON,
// whatever the mode: redirected output is for machines.
//
// Out panics if the value cannot be serialized. A value passed here is
// declared serializable by its caller; failing that is a programmer error,
// not a runtime condition.
func (f *Formatter) Out(v any) {
	switch {
	case f.cfg.Output == ModeJSON || !f.stdoutTTY:
		f.writeJSON(v, f.stdoutTTY)
	case f.cfg.Output == ModeTree:
		mustWrite(fmt.Fprintln(f.stdout, renderTree(v)))
	default:
		mustWrite(fmt.Fprintln(f.stdout, displayString(v)))
	}
}

// writeJSON encodes v to stdout, pretty-printed for terminals and compact
// otherwise.
func (f *Formatter) writeJSON(v any, pretty bool) {
	enc := json.NewEncoder(f.stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		panic(fmt.Sprintf("value is not serializable: %v", err))
	}
}

// displayString returns the human-readable form of a value: its Stringer
// form when it has one, fmt's default formatting otherwise.
func displayString(v any) string {
	switch s := v.(type) {
	case fmt.Stringer:
		return s.String()
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

// mustWrite panics if a write operation fails.
// Use this to wrap write operations that should never fail
// (e.g., writing to stdout/stderr or buffers).
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
