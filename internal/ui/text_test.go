package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func forceColor(t *testing.T) {
	t.Helper()
	os.Unsetenv("NO_COLOR")
	original := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = original })
}

func TestFormatterWithColor(t *testing.T) {
	forceColor(t)

	result := SecretPath.Sprint("db.password")
	if strings.Contains(result, "'") {
		t.Errorf("SecretPath.Sprint should not contain quotes when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("SecretPath.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}

	result = Highlight.Sprintf("store: %s", "main.pass")
	if !strings.Contains(result, "store: main.pass") {
		t.Errorf("Highlight.Sprintf should contain formatted text, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "passifier secrets list", "`passifier secrets list`"},
		{"Path has no decoration", Path, "store.pass", "store.pass"},
		{"SecretPath adds quotes", SecretPath, "db.password", "'db.password'"},
		{"Branch adds slash", Branch, "db", "db/"},
		{"Flag has no decoration", Flag, "--force", "--force"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "aes-256-gcm", "'aes-256-gcm'"},
		{"Secret has no decoration", Secret, "hunter2", "hunter2"},
		{"Muted adds parentheses", Muted, "unknown", "(unknown)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.formatter.color == nil {
				t.Fatalf("%s has nil color", tt.name)
			}
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("Sprint(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if got, want := Code.Sprintf("passifier secrets %s", "read"), "`passifier secrets read`"; got != want {
		t.Errorf("Code.Sprintf() = %q, want %q", got, want)
	}
	if got, want := Code.Sprint("passifier", " ", "config"), "`passifier config`"; got != want {
		t.Errorf("Code.Sprint with multiple args = %q, want %q", got, want)
	}
}

func TestNoColorFunction(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !noColor() {
		t.Error("noColor() should return true when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	original := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = original }()
	if !noColor() {
		t.Error("noColor() should return true when color.NoColor is true")
	}
}

func TestEnsureNewline(t *testing.T) {
	for input, want := range map[string]string{"": "\n", "a": "a\n", "a\n": "a\n"} {
		if got := EnsureNewline(input); got != want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", input, got, want)
		}
	}
}
