package output

import "sync"

// The process-wide shared Formatter. Access only goes through the
// functions below; the lock is held for pointer swaps and reads, never
// across rendering or a blocking stdin read.
var (
	mu       sync.Mutex
	instance *Formatter
)

// Init replaces the shared Formatter with a freshly constructed one built
// from cfg: fresh terminal probe, indent level zero.
func Init(cfg Config) {
	Set(New(cfg))
}

// InitDefault replaces the shared Formatter with one built from
// DefaultConfig.
func InitDefault() {
	Init(DefaultConfig())
}

// Set installs f as the shared Formatter. The CLI uses this to install a
// formatter wired to cobra's streams; tests use it to capture output.
func Set(f *Formatter) {
	mu.Lock()
	instance = f
	mu.Unlock()
}

// Current returns the shared Formatter, lazily constructing a default one
// on first access. The returned instance is safe to use without the lock:
// formatters are never mutated, only replaced.
func Current() *Formatter {
	mu.Lock()
	defer mu.Unlock()
	return current()
}

// current must be called with mu held.
func current() *Formatter {
	if instance == nil {
		instance = New(DefaultConfig())
	}
	return instance
}

// NestScope prints message through the shared Formatter, installs a copy
// one indent level deeper, runs body, and restores the original instance.
// The restore runs even if body panics, so the indent level always returns
// to its pre-call value; recursion nests naturally. The lock is not held
// while body runs.
func NestScope[T any](message string, body func() T) T {
	orig := enterScope(message)
	defer func() {
		mu.Lock()
		instance = orig
		mu.Unlock()
	}()
	return body()
}

// enterScope swaps the nested copy in and returns the original for the
// caller to restore.
func enterScope(message string) *Formatter {
	mu.Lock()
	defer mu.Unlock()
	orig := current()
	orig.Print(message)
	instance = orig.Nest()
	return orig
}

// Package-level helpers over the shared Formatter, for call sites that
// don't need a handle of their own. Each takes the instance out under the
// lock and renders after releasing it.

// Print renders a normal-level message through the shared Formatter.
func Print(msg string) { Current().Print(msg) }

// Detail renders decorative narration through the shared Formatter.
func Detail(msg string) { Current().Detail(msg) }

// Success renders a success-level message through the shared Formatter.
func Success(msg string) { Current().Success(msg) }

// Warn renders a warning through the shared Formatter.
func Warn(msg string) { Current().Warn(msg) }

// Error renders an error through the shared Formatter.
func Error(msg string) { Current().Error(msg) }

// Out renders a structured value through the shared Formatter.
func Out(v any) { Current().Out(v) }
