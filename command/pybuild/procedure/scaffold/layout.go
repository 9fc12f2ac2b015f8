package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrDirectoryExists is the only fatal precondition: a run against a target
// that already exists must fail without touching the filesystem, so a prior
// scaffold is never silently overwritten.
var ErrDirectoryExists = errors.New("directory already exists")

// Layout lists the subdirectory skeleton created under the project root.
var Layout = []string{
	"app",
	"config",
	"WORKSPACE",
	filepath.Join("config", "RONTESTING"),
	filepath.Join("config", "tests"),
	filepath.Join("config", ".vscode"),
}

// CreateRoot verifies the target does not already exist and creates it,
// including any missing parent segments.
func CreateRoot(root string) error {
	// * check precondition
	if _, err := os.Stat(root); err == nil {
		return fmt.Errorf("%w: %s", ErrDirectoryExists, root)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", root, err)
	}

	// * create root directory
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", root, err)
	}

	return nil
}

// CreateLayout creates the skeleton under the now-existing root. Creation is
// idempotent for the skeleton itself; unrelated filesystem errors propagate.
func CreateLayout(root string) error {
	for _, directory := range Layout {
		if err := os.MkdirAll(filepath.Join(root, directory), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", directory, err)
		}
	}
	return nil
}
