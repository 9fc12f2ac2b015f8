package scaffold

import (
	"context"
	"fmt"

	"go.scnd.dev/open/pybuild/command/pybuild/procedure/printer"
)

// Report prints the created directory tree, the activation hint, and the
// example-usage banner. Console output only; nothing downstream consumes it.
func (r *Sequencer) Report(ctx context.Context) error {
	root := *r.spec.Directory

	// * render tree, excluding the environment directory and os metadata
	if err := printer.PrintTree(r.out, root, []string{*r.spec.Venv, ".DS_Store"}); err != nil {
		return fmt.Errorf("failed to print tree: %w", err)
	}

	// * print activation hint and example usage
	printer.PrintActivation(r.out, root, r.spec.VenvPath())
	printer.PrintExampleUsage(r.out)

	return nil
}
