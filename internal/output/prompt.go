package output

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt renders msg on the same line with the Prompt style, then reads
// one line from stdin and returns it trimmed. Fails with ErrNotInteractive
// when stdout is not a terminal.
func (f *Formatter) Prompt(msg string) (string, error) {
	if !f.stdoutTTY {
		return "", ErrNotInteractive
	}
	if err := f.sameline(LevelPrompt, msg); err != nil {
		return "", err
	}
	line, err := f.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptYesNo asks a yes/no question, rendering " [Y/n] - " or " [y/N] - "
// after msg depending on the default. Only a trimmed, lowercased answer of
// exactly "n" (default yes) or "y" (default no) flips the default; every
// other answer, empty included, takes it. Fails with ErrNotInteractive
// when stdout is not a terminal.
func (f *Formatter) PromptYesNo(msg string, defaultYes bool) (bool, error) {
	if !f.stdoutTTY {
		return false, ErrNotInteractive
	}
	suffix := " [y/N] - "
	if defaultYes {
		suffix = " [Y/n] - "
	}
	if err := f.sameline(LevelPrompt, msg+suffix); err != nil {
		return false, err
	}
	line, err := f.readLine()
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	if defaultYes {
		return answer != "n", nil
	}
	return answer == "y", nil
}

// Pick presents items as a numbered list and loops until the user enters a
// valid 1-based index, re-prompting on non-numeric or out-of-range input.
// It returns a pointer to the chosen element of items. Like the other
// prompts, it fails with ErrNotInteractive when stdout is not a terminal.
func Pick[T any](f *Formatter, msg string, items []T) (*T, error) {
	if !f.stdoutTTY {
		return nil, ErrNotInteractive
	}
	f.Print(msg)
	for i, item := range items {
		f.Print(fmt.Sprintf("[%d] - %s", i+1, displayString(item)))
	}
	for {
		if err := f.sameline(LevelPrompt, "Enter your pick: "); err != nil {
			return nil, err
		}
		line, err := f.readLine()
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			f.Error("invalid input, enter a number")
			continue
		}
		if n < 1 || n > len(items) {
			f.Error(fmt.Sprintf("pick a number between 1 and %d", len(items)))
			continue
		}
		return &items[n-1], nil
	}
}

// sameline writes a prompt without a trailing newline, flushing the writer
// if it buffers, so the text is visible before the blocking read.
func (f *Formatter) sameline(level Level, msg string) error {
	if _, err := fmt.Fprint(f.stdout, f.compose(level, msg)); err != nil {
		return NewSystemErrorWithCause("writing prompt", err)
	}
	if fl, ok := f.stdout.(interface{ Flush() error }); ok {
		if err := fl.Flush(); err != nil {
			return NewSystemErrorWithCause("flushing prompt", err)
		}
	}
	return nil
}

// readLine reads one newline-delimited line from stdin. A final line
// without a newline (EOF) is still accepted.
func (f *Formatter) readLine() (string, error) {
	line, err := f.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", NewSystemErrorWithCause("reading input", err)
	}
	return line, nil
}
