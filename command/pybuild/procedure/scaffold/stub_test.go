package scaffold

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"go.scnd.dev/open/pybuild/command/pybuild/procedure/project"
	"go.scnd.dev/open/pybuild/utility/invoke"
)

// stubRunner records invocations instead of spawning processes. The default
// behavior succeeds and emulates stdout redirection by creating the target
// file; a handle hook overrides it.
type stubRunner struct {
	invocations []*invoke.Invocation
	handle      func(invocation *invoke.Invocation) (*invoke.Result, error)
}

func (r *stubRunner) Run(ctx context.Context, invocation *invoke.Invocation) (*invoke.Result, error) {
	r.invocations = append(r.invocations, invocation)
	if r.handle != nil {
		return r.handle(invocation)
	}
	if invocation.StdoutPath != "" {
		if err := os.WriteFile(invocation.StdoutPath, []byte{}, 0644); err != nil {
			return nil, err
		}
	}
	return &invoke.Result{}, nil
}

func testApp() *testAppImpl {
	return &testAppImpl{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

type testAppImpl struct {
	logger *slog.Logger
}

func (r *testAppImpl) Verbose() *bool {
	verbose := false
	return &verbose
}

func (r *testAppImpl) Logger() *slog.Logger {
	return r.logger
}

func testSpec(t *testing.T, directory string, venv string, python string, packages string) *project.Spec {
	t.Helper()
	spec, err := project.NewSpec(directory, venv, python, packages)
	if err != nil {
		t.Fatalf("Failed to create spec: %v", err)
	}
	return spec
}
