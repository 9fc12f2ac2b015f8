package template

import (
	"strings"

	"go.scnd.dev/open/pybuild/command/pybuild/procedure/project"
)

// Gitignore renders the ignore file: generated paths first, then the
// universal cache and build patterns.
func Gitignore(spec *project.Spec) ([]byte, error) {
	entries := []string{
		"config/" + *spec.Venv,
		"config/database.sqlite3",
		"config/RONTESTING/",
		"config/.env",
		"__pycache__/",
		"*.pyc",
		"*.pyo",
		"*.pyd",
		".Python",
		"ipynb_checkpoints/",
		".vscode/",
		".idea/",
		"*.log",
		".DS_Store",
		"dist/",
		"build/",
		"*.egg-info/",
		".pytest_cache/",
		".mypy_cache/",
	}
	return []byte(strings.Join(entries, "\n")), nil
}

func Dockerignore(spec *project.Spec) ([]byte, error) {
	entries := []string{
		".git",
		".vscode",
		"*.pyc",
		"*.pyo",
		"*.pyd",
		"__pycache__",
		".Python",
		"env",
		"pip-log.txt",
		"pip-delete-this-directory.txt",
	}
	return []byte(strings.Join(entries, "\n") + "\n"), nil
}
