package scaffold

import (
	"context"
	"os"
	"path/filepath"

	"go.scnd.dev/open/pybuild/command/pybuild/procedure/template"
)

// WriteArtifacts renders every entry of the template set and writes it under
// the project root. Overwriting is safe: the precondition guarantees a fresh
// tree. A failed entry is surfaced as a warning and the remaining entries
// are still written.
func (r *Sequencer) WriteArtifacts(ctx context.Context) error {
	root := *r.spec.Directory

	for _, file := range template.Set() {
		r.app.Logger().Debug("writing artifact", "path", file.Path)

		content, err := file.Render(r.spec)
		if err != nil {
			r.app.Logger().Warn("artifact render failed", "path", file.Path, "error", err)
			continue
		}

		target := filepath.Join(root, file.Path)
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			r.app.Logger().Warn("artifact directory creation failed", "path", file.Path, "error", err)
			continue
		}
		if err := os.WriteFile(target, content, 0644); err != nil {
			r.app.Logger().Warn("artifact write failed", "path", file.Path, "error", err)
		}
	}

	return nil
}
