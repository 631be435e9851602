package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestContactbotCommand(t *testing.T) {
	cmd := NewContactbotCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader("hello\nchange Ann 1\nall\nclose\n"))
	cmd.SetArgs([]string{"--no-color"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"How can I help you?", "Contact not found. Add it first.", "No contacts found.", "Good bye!"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(stderr.String(), "level=ERROR") {
		t.Errorf("input errors should be logged to stderr, got %q", stderr.String())
	}
}

func TestContactbotCommand_RejectsArgs(t *testing.T) {
	cmd := NewContactbotCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for positional arguments")
	}
}
