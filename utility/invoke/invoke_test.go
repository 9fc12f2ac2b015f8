package invoke

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCapturesOutput(t *testing.T) {
	runner := NewExec()

	result, err := runner.Run(context.Background(), &Invocation{
		Name: "sh",
		Args: []string{"-c", "echo out; echo err >&2"},
	})
	if err != nil {
		t.Fatalf("Failed to run command: %v", err)
	}

	if result.ExitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", result.ExitCode)
	}
	if strings.TrimSpace(result.Stdout) != "out" {
		t.Errorf("Expected stdout 'out', got %q", result.Stdout)
	}
	if strings.TrimSpace(result.Stderr) != "err" {
		t.Errorf("Expected stderr 'err', got %q", result.Stderr)
	}
}

func TestRunReportsExitCode(t *testing.T) {
	runner := NewExec()

	result, err := runner.Run(context.Background(), &Invocation{
		Name: "sh",
		Args: []string{"-c", "exit 3"},
	})
	if err != nil {
		t.Fatalf("Expected no spawn error for non-zero exit, got %v", err)
	}

	if result.ExitCode != 3 {
		t.Errorf("Expected exit code 3, got %d", result.ExitCode)
	}
}

func TestRunMissingBinary(t *testing.T) {
	runner := NewExec()

	_, err := runner.Run(context.Background(), &Invocation{
		Name: "pybuild-no-such-binary",
	})
	if err == nil {
		t.Fatal("Expected spawn error for missing binary")
	}
}

func TestRunRedirectsStdout(t *testing.T) {
	runner := NewExec()
	target := filepath.Join(t.TempDir(), "frozen.txt")

	result, err := runner.Run(context.Background(), &Invocation{
		Name:       "sh",
		Args:       []string{"-c", "echo frozen"},
		StdoutPath: target,
	})
	if err != nil {
		t.Fatalf("Failed to run command: %v", err)
	}
	if result.Stdout != "" {
		t.Errorf("Expected empty captured stdout when redirected, got %q", result.Stdout)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read redirected output: %v", err)
	}
	if strings.TrimSpace(string(content)) != "frozen" {
		t.Errorf("Expected redirected content 'frozen', got %q", string(content))
	}
}

func TestRunUsesWorkingDirectory(t *testing.T) {
	runner := NewExec()
	dir := t.TempDir()

	result, err := runner.Run(context.Background(), &Invocation{
		Name: "sh",
		Args: []string{"-c", "pwd"},
		Dir:  dir,
	})
	if err != nil {
		t.Fatalf("Failed to run command: %v", err)
	}

	// resolve symlinks, some systems alias the temp directory
	expected, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("Failed to resolve directory: %v", err)
	}
	actual, err := filepath.EvalSymlinks(strings.TrimSpace(result.Stdout))
	if err != nil {
		t.Fatalf("Failed to resolve output: %v", err)
	}
	if actual != expected {
		t.Errorf("Expected working directory %s, got %s", expected, actual)
	}
}

func TestResultErr(t *testing.T) {
	ok := &Result{ExitCode: 0}
	if err := ok.Err("tool"); err != nil {
		t.Errorf("Expected nil for zero exit, got %v", err)
	}

	failed := &Result{ExitCode: 2, Stderr: "boom\n"}
	err := failed.Err("tool")
	if err == nil {
		t.Fatal("Expected error for non-zero exit")
	}

	var commandErr *CommandError
	if !errors.As(err, &commandErr) {
		t.Fatalf("Expected CommandError, got %T", err)
	}
	if commandErr.ExitCode != 2 {
		t.Errorf("Expected exit code 2, got %d", commandErr.ExitCode)
	}
	if !strings.Contains(commandErr.Error(), "boom") {
		t.Errorf("Expected stderr in message, got %q", commandErr.Error())
	}
}
