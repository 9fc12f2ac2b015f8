package main

import (
	"github.com/alecthomas/kong"
	"go.scnd.dev/open/pybuild/command/pybuild/app"
	"go.scnd.dev/open/pybuild/command/pybuild/subcommand/create"
)

type Command struct {
	Verbose bool            `help:"Enable verbose output." short:"v"`
	Create  *create.Command `cmd:"create" help:"Scaffold a new Python project."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("pybuild"),
		kong.Description("Python Project Builder Command Line Interface"),
	)
	err := ctx.Run(app.New(command.Verbose))
	ctx.FatalIfErrorf(err)
}
