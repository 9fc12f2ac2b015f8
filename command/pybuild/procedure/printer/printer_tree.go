package printer

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/ddddddO/gtree"
)

// PrintTree renders the directory tree of root, skipping entries whose name
// matches one of the exclusions.
func PrintTree(w io.Writer, root string, exclusions []string) error {
	excluded := make(map[string]bool)
	for _, name := range exclusions {
		excluded[name] = true
	}

	// * construct tree root
	node := gtree.NewRoot(filepath.Base(root))
	nodes := map[string]*gtree.Node{
		".": node,
	}

	// * walk created structure
	err := filepath.WalkDir(root, func(target string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if target == root {
			return nil
		}
		if excluded[entry.Name()] {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relative, err := filepath.Rel(root, target)
		if err != nil {
			return err
		}

		// * attach node under its parent directory
		parent := nodes[filepath.Dir(relative)]
		child := parent.Add(entry.Name())
		if entry.IsDir() {
			nodes[relative] = child
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", root, err)
	}

	// * render tree
	if err := gtree.OutputProgrammably(w, node); err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}

	return nil
}
