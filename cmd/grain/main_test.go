package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/grain/internal/output"
)

// execGrain runs the root command with captured streams. The config home
// is pointed at an empty temp dir so the developer's own theme file never
// leaks into tests.
func execGrain(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("GRAIN_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSay_PlainWhenPiped(t *testing.T) {
	stdout, stderr, err := execGrain(t, "", "say", "building", "image")
	if err != nil {
		t.Fatalf("say failed: %v", err)
	}
	if stdout != "building image\n" {
		t.Errorf("stdout = %q, want %q", stdout, "building image\n")
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestSay_DecoratedWithColorAlways(t *testing.T) {
	stdout, _, err := execGrain(t, "", "say", "--color", "always", "--level", "success", "image pushed")
	if err != nil {
		t.Fatalf("say failed: %v", err)
	}
	if !strings.Contains(stdout, "✔ image pushed") {
		t.Errorf("stdout = %q, want success prefix", stdout)
	}
}

func TestSay_ErrorLevelGoesToStderr(t *testing.T) {
	stdout, stderr, err := execGrain(t, "", "say", "--level", "error", "push failed")
	if err != nil {
		t.Fatalf("say failed: %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, "push failed") {
		t.Errorf("stderr = %q, want error message", stderr)
	}
}

func TestSay_SuppressedUnderJSON(t *testing.T) {
	stdout, stderr, err := execGrain(t, "", "say", "--json", "--level", "warn", "quota low")
	if err != nil {
		t.Fatalf("say failed: %v", err)
	}
	if stdout != "" || stderr != "" {
		t.Errorf("output = (%q, %q), want none under --json", stdout, stderr)
	}
}

func TestSay_RejectsUnknownLevel(t *testing.T) {
	_, _, err := execGrain(t, "", "say", "--level", "loud", "hi")
	if err == nil {
		t.Fatal("say should reject an unknown level")
	}
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
}

func TestRender_CompactJSONWhenPiped(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "release.yaml")
	if err := os.WriteFile(doc, []byte("tag: v1.2.0\nassets:\n  - linux\n  - darwin\n"), 0600); err != nil {
		t.Fatalf("writing doc: %v", err)
	}

	// --tree is configured, but piped stdout always gets compact JSON.
	stdout, _, err := execGrain(t, "", "render", "--tree", doc)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(stdout), &decoded); err != nil {
		t.Fatalf("output %q is not JSON: %v", stdout, err)
	}
	if decoded["tag"] != "v1.2.0" {
		t.Errorf("decoded = %v", decoded)
	}
	if strings.Count(stdout, "\n") != 1 {
		t.Errorf("output %q is not compact", stdout)
	}
}

func TestRender_TreeOnTerminal(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "release.yaml")
	if err := os.WriteFile(doc, []byte("tag: v1.2.0\nassets:\n  - linux\n"), 0600); err != nil {
		t.Fatalf("writing doc: %v", err)
	}

	stdout, _, err := execGrain(t, "", "render", "--tree", "--color", "always", doc)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(stdout, "tag: v1.2.0") || !strings.Contains(stdout, "assets") {
		t.Errorf("stdout = %q, want tree with tag and assets", stdout)
	}
}

func TestRender_ReadsStdin(t *testing.T) {
	stdout, _, err := execGrain(t, `{"name": "grain"}`, "render")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(stdout), &decoded); err != nil {
		t.Fatalf("output %q is not JSON: %v", stdout, err)
	}
	if decoded["name"] != "grain" {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestRender_RejectsMalformedDocument(t *testing.T) {
	_, _, err := execGrain(t, "{unclosed", "render")
	if err == nil {
		t.Fatal("render should fail on a malformed document")
	}
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
}

func TestConfirm_NotATerminal(t *testing.T) {
	_, _, err := execGrain(t, "y\n", "confirm", "Continue?")
	if !errors.Is(err, output.ErrNotInteractive) {
		t.Fatalf("err = %v, want ErrNotInteractive", err)
	}
	if output.GetExitCode(err) != output.ExitUnsupported {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUnsupported)
	}
}

func TestConfirm_YesAndNo(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr bool
	}{
		{name: "y accepts", stdin: "y\n", args: []string{"confirm", "--color", "always", "Continue?"}},
		{name: "empty declines by default", stdin: "\n", args: []string{"confirm", "--color", "always", "Continue?"}, wantErr: true},
		{name: "empty accepts with default-yes", stdin: "\n", args: []string{"confirm", "--color", "always", "--default-yes", "Continue?"}},
		{name: "n declines with default-yes", stdin: "n\n", args: []string{"confirm", "--color", "always", "--default-yes", "Continue?"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execGrain(t, tt.stdin, tt.args...)
			if tt.wantErr {
				if output.GetExitCode(err) != output.ExitUserError {
					t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
				}
				return
			}
			if err != nil {
				t.Errorf("confirm failed: %v", err)
			}
		})
	}
}

func TestInput_EchoesAnswer(t *testing.T) {
	stdout, _, err := execGrain(t, "v1.2.0\n", "input", "--color", "always", "Release name: ")
	if err != nil {
		t.Fatalf("input failed: %v", err)
	}
	if !strings.HasSuffix(stdout, "v1.2.0\n") {
		t.Errorf("stdout = %q, want trailing echoed answer", stdout)
	}
}

func TestChoose_PicksItem(t *testing.T) {
	stdout, _, err := execGrain(t, "2\n", "choose", "--color", "always", "eu-west-1", "us-east-1", "ap-south-1")
	if err != nil {
		t.Fatalf("choose failed: %v", err)
	}
	if !strings.HasSuffix(stdout, "us-east-1\n") {
		t.Errorf("stdout = %q, want chosen item on the last line", stdout)
	}
	if !strings.Contains(stdout, "[2] - us-east-1") {
		t.Errorf("stdout = %q, want numbered menu", stdout)
	}
}

func TestChoose_NotATerminal(t *testing.T) {
	_, _, err := execGrain(t, "1\n", "choose", "a", "b")
	if !errors.Is(err, output.ErrNotInteractive) {
		t.Fatalf("err = %v, want ErrNotInteractive", err)
	}
}

func TestDemo_PlainAndNested(t *testing.T) {
	stdout, stderr, err := execGrain(t, "", "demo", "--color", "always")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	for _, want := range []string{"a nested section", "    + one level deep", "        ✔ two levels deep"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout = %q, want %q", stdout, want)
		}
	}
	if !strings.Contains(stderr, "an error") {
		t.Errorf("stderr = %q, want the error sample", stderr)
	}
}

func TestDemo_JSONMode(t *testing.T) {
	stdout, stderr, err := execGrain(t, "", "demo", "--json")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty under --json", stderr)
	}
	// Only the structured value survives JSON mode.
	var decoded map[string]any
	if err := json.Unmarshal([]byte(stdout), &decoded); err != nil {
		t.Fatalf("stdout %q is not a single JSON document: %v", stdout, err)
	}
}

func TestThemeFlag_OverridesStyles(t *testing.T) {
	theme := filepath.Join(t.TempDir(), "theme.yaml")
	content := "levels:\n  success:\n    prefix: \"OK\"\n    color: \"42\"\n"
	if err := os.WriteFile(theme, []byte(content), 0600); err != nil {
		t.Fatalf("writing theme: %v", err)
	}

	stdout, _, err := execGrain(t, "", "say", "--color", "always", "--theme", theme, "--level", "success", "done")
	if err != nil {
		t.Fatalf("say failed: %v", err)
	}
	if !strings.Contains(stdout, "OK done") {
		t.Errorf("stdout = %q, want themed prefix", stdout)
	}
}

func TestBuildVersion(t *testing.T) {
	if got := buildVersion(); got != "dev" {
		t.Errorf("buildVersion() = %q, want %q", got, "dev")
	}
}
