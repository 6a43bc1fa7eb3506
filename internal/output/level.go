package output

import "fmt"

// Level is a semantic output category. It selects which Style a message is
// rendered with and, for Error, which stream it goes to.
type Level int

// The full level set. Detail is decorative narration that is omitted when
// stdout is not a terminal; Prompt styles the text of interactive prompts.
const (
	LevelNormal Level = iota
	LevelPrompt
	LevelSuccess
	LevelDetail
	LevelWarn
	LevelError
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelNormal:
		return "normal"
	case LevelPrompt:
		return "prompt"
	case LevelSuccess:
		return "success"
	case LevelDetail:
		return "detail"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel converts a level name (as used in theme files and the --level
// flag) to a Level.
func ParseLevel(name string) (Level, error) {
	switch name {
	case "normal":
		return LevelNormal, nil
	case "prompt":
		return LevelPrompt, nil
	case "success":
		return LevelSuccess, nil
	case "detail":
		return LevelDetail, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelNormal, fmt.Errorf("unknown level %q (valid: normal, prompt, success, detail, warn, error)", name)
	}
}
