package scaffold

import (
	"context"
	"fmt"
	"io"

	"go.scnd.dev/open/pybuild/command/pybuild/index"
	"go.scnd.dev/open/pybuild/command/pybuild/procedure/project"
	"go.scnd.dev/open/pybuild/utility/invoke"
)

// Step is one entry of the pipeline. A fatal step aborts the run on
// failure; any other failure is surfaced as a warning and the run
// continues, preserving the "exit non-zero only on a pre-existing
// directory" contract.
type Step struct {
	Name  string
	Fatal bool
	Run   func(ctx context.Context) error
}

// Sequencer executes the scaffold pipeline in fixed order: precondition,
// layout, environment provisioning, artifacts, repository, report. Data
// flows strictly forward and there is no rollback of completed steps.
type Sequencer struct {
	app    index.App
	spec   *project.Spec
	runner invoke.Runner
	out    io.Writer
}

func NewSequencer(app index.App, spec *project.Spec, runner invoke.Runner, out io.Writer) *Sequencer {
	return &Sequencer{
		app:    app,
		spec:   spec,
		runner: runner,
		out:    out,
	}
}

func (r *Sequencer) Steps() []*Step {
	root := *r.spec.Directory
	return []*Step{
		{Name: "precondition", Fatal: true, Run: func(ctx context.Context) error { return CreateRoot(root) }},
		{Name: "layout", Fatal: true, Run: func(ctx context.Context) error { return CreateLayout(root) }},
		{Name: "virtualenv", Fatal: false, Run: r.CreateVirtualenv},
		{Name: "install", Fatal: false, Run: r.InstallPackages},
		{Name: "artifact", Fatal: false, Run: r.WriteArtifacts},
		{Name: "freeze", Fatal: false, Run: r.FreezePackages},
		{Name: "repository", Fatal: false, Run: r.InitializeRepository},
		{Name: "report", Fatal: false, Run: r.Report},
	}
}

func (r *Sequencer) Run(ctx context.Context) error {
	for _, step := range r.Steps() {
		r.app.Logger().Debug("running step", "step", step.Name)
		if err := step.Run(ctx); err != nil {
			if step.Fatal {
				return fmt.Errorf("failed to run %s step: %w", step.Name, err)
			}
			r.app.Logger().Warn("step failed", "step", step.Name, "error", err)
		}
	}
	return nil
}
