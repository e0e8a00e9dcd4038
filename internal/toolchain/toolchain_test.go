package toolchain

import (
	"context"
	"os/exec"
	"testing"
)

func TestExecRunner_CapturesStdout(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	out, err := NewExecRunner().Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "printf 'package glad\\n'"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if string(out) != "package glad\n" {
		t.Fatalf("Run() = %q", out)
	}
}

func TestExecRunner_IncludesStderrOnFailure(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	_, err := NewExecRunner().Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo 'glad.h: not found' >&2; exit 3"},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got := err.Error(); got != "sh: exit status 3\nglad.h: not found" {
		t.Fatalf("unexpected error: %q", got)
	}
}

func TestCommand_String(t *testing.T) {
	c := Command{Name: "cc", Args: []string{"-c", "glad.c"}}
	if c.String() != "cc -c glad.c" {
		t.Fatalf("String() = %q", c.String())
	}
}
