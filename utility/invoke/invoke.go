package invoke

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Invocation describes one external command call. StdoutPath, when set,
// redirects the command's standard output into that file instead of the
// result buffer.
type Invocation struct {
	Name       string
	Args       []string
	Dir        string
	StdoutPath string
}

// Result carries the captured output and exit status of a completed call.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandError reports a command that ran but exited non-zero.
type CommandError struct {
	Name     string
	ExitCode int
	Stderr   string
}

func (r *CommandError) Error() string {
	if r.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d: %s", r.Name, r.ExitCode, strings.TrimSpace(r.Stderr))
	}
	return fmt.Sprintf("%s exited with code %d", r.Name, r.ExitCode)
}

// Err converts a non-zero exit into a CommandError, so callers decide
// per step whether to abort, warn, or continue.
func (r *Result) Err(name string) error {
	if r.ExitCode == 0 {
		return nil
	}
	return &CommandError{
		Name:     name,
		ExitCode: r.ExitCode,
		Stderr:   r.Stderr,
	}
}

// Runner executes external commands. The call blocks until the child
// process exits. An error is returned only for spawn-level failures such
// as a missing binary; a non-zero exit is reported through the result.
type Runner interface {
	Run(ctx context.Context, invocation *Invocation) (*Result, error)
}

type Exec struct{}

func NewExec() *Exec {
	return &Exec{}
}

func (r *Exec) Run(ctx context.Context, invocation *Invocation) (*Result, error) {
	// * construct command
	cmd := exec.CommandContext(ctx, invocation.Name, invocation.Args...)
	cmd.Dir = invocation.Dir

	// * capture stderr
	var stdout, stderr bytes.Buffer
	cmd.Stderr = &stderr

	// * redirect or capture stdout
	if invocation.StdoutPath != "" {
		file, err := os.Create(invocation.StdoutPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file %s: %w", invocation.StdoutPath, err)
		}
		defer file.Close()
		cmd.Stdout = file
	} else {
		cmd.Stdout = &stdout
	}

	// * run command
	err := cmd.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("failed to run %s: %w", invocation.Name, err)
	}

	return result, nil
}
