package project

import (
	"fmt"
	"path"
	"strings"

	"github.com/bsthun/gut"
)

// Spec holds the scaffold parameters parsed from the invocation. It is
// constructed once and never mutated afterwards.
type Spec struct {
	Directory *string `validate:"required"`
	Venv      *string `validate:"required"`
	Python    *string `validate:"required"`
	Packages  []string
}

func NewSpec(directory string, venv string, python string, packages string) (*Spec, error) {
	// * construct spec
	spec := &Spec{
		Directory: gut.Ptr(directory),
		Venv:      gut.Ptr(venv),
		Python:    gut.Ptr(python),
		Packages:  SplitPackages(packages),
	}

	// * validate spec
	if err := gut.Validate(spec); err != nil {
		return nil, fmt.Errorf("invalid project spec: %w", err)
	}

	return spec, nil
}

// SplitPackages splits the comma-separated package list. Names are passed
// through uninterpreted, so duplicates are permitted.
func SplitPackages(packages string) []string {
	if packages == "" {
		return nil
	}
	return strings.Split(packages, ",")
}

// VenvPath returns the virtual environment path relative to the project root.
func (r *Spec) VenvPath() string {
	return path.Join("config", *r.Venv)
}

// PipPath returns the installer path inside the virtual environment,
// relative to the project root.
func (r *Spec) PipPath() string {
	return path.Join("config", *r.Venv, "bin", "pip")
}
