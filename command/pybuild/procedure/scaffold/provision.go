package scaffold

import (
	"context"
	"path/filepath"

	"go.scnd.dev/open/pybuild/utility/invoke"
)

// DefaultPackages are always installed in addition to the user-requested
// list: a dotenv loader, a linter, and the API client used by the starter
// script.
var DefaultPackages = []string{
	"python-dotenv",
	"pylint",
	"openai",
}

// CreateVirtualenv invokes the virtual environment tool with the requested
// runtime version. The call blocks until the tool exits.
func (r *Sequencer) CreateVirtualenv(ctx context.Context) error {
	venvPath := r.spec.VenvPath()
	r.app.Logger().Info("creating virtual environment", "path", venvPath, "python", *r.spec.Python)

	result, err := r.runner.Run(ctx, &invoke.Invocation{
		Name: "virtualenv",
		Args: []string{"-p", "python" + *r.spec.Python, venvPath},
		Dir:  *r.spec.Directory,
	})
	if err != nil {
		return err
	}

	return result.Err("virtualenv")
}

// InstallPackages issues one installer invocation per package, sequentially:
// user-requested packages in given order, then the defaults. A failed
// install is surfaced as a warning and does not abort the remaining ones.
func (r *Sequencer) InstallPackages(ctx context.Context) error {
	packages := append(append([]string{}, r.spec.Packages...), DefaultPackages...)

	for _, name := range packages {
		r.app.Logger().Info("installing package", "package", name)

		result, err := r.runner.Run(ctx, &invoke.Invocation{
			Name: r.spec.PipPath(),
			Args: []string{"install", name},
			Dir:  *r.spec.Directory,
		})
		if err == nil {
			err = result.Err("pip install " + name)
		}
		if err != nil {
			r.app.Logger().Warn("package install failed", "package", name, "error", err)
		}
	}

	return nil
}

// FreezePackages captures the resolved package set by redirecting the
// installer's list output into the lock file. It depends on a completed
// provisioning step, which is why it runs after the installs.
func (r *Sequencer) FreezePackages(ctx context.Context) error {
	lockPath := filepath.Join(*r.spec.Directory, "config", "requirements.txt")

	result, err := r.runner.Run(ctx, &invoke.Invocation{
		Name:       r.spec.PipPath(),
		Args:       []string{"freeze"},
		Dir:        *r.spec.Directory,
		StdoutPath: lockPath,
	})
	if err != nil {
		return err
	}

	return result.Err("pip freeze")
}
