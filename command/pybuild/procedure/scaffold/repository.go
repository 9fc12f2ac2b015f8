package scaffold

import (
	"context"

	"go.scnd.dev/open/pybuild/utility/invoke"
)

// InitializeRepository initializes the version-control repository: init,
// switch to the primary branch, stage everything, commit. Each sub-step
// failure is surfaced as a warning and the next sub-step still runs.
func (r *Sequencer) InitializeRepository(ctx context.Context) error {
	root := *r.spec.Directory
	r.app.Logger().Info("initializing git repository", "directory", root)

	invocations := []*invoke.Invocation{
		{Name: "git", Args: []string{"init"}, Dir: root},
		{Name: "git", Args: []string{"checkout", "-b", "main"}, Dir: root},
		{Name: "git", Args: []string{"add", "."}, Dir: root},
		{Name: "git", Args: []string{"commit", "-m", "Initial commit"}, Dir: root},
	}

	for _, invocation := range invocations {
		result, err := r.runner.Run(ctx, invocation)
		if err == nil {
			err = result.Err("git " + invocation.Args[0])
		}
		if err != nil {
			r.app.Logger().Warn("git step failed", "args", invocation.Args, "error", err)
		}
	}

	return nil
}
