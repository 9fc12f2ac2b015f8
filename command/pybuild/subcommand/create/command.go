package create

import (
	"context"
	"os"

	"go.scnd.dev/open/pybuild/command/pybuild/app"
	"go.scnd.dev/open/pybuild/command/pybuild/procedure/project"
	"go.scnd.dev/open/pybuild/command/pybuild/procedure/scaffold"
	"go.scnd.dev/open/pybuild/utility/invoke"
)

type Command struct {
	Dir      string `help:"Directory name for the new project." default:"project"`
	Venv     string `help:"Name of the Python virtual environment to create." default:"venv"`
	Packages string `help:"Comma-separated list of Python packages to install." default:""`
	Python   string `help:"Python version to use in the virtual environment." default:"3.11.3"`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	ctx := context.Background()

	// * parse project spec
	spec, err := project.NewSpec(command.Dir, command.Venv, command.Python, command.Packages)
	if err != nil {
		return err
	}

	// * run scaffold pipeline
	sequencer := scaffold.NewSequencer(app, spec, invoke.NewExec(), os.Stdout)
	return sequencer.Run(ctx)
}
