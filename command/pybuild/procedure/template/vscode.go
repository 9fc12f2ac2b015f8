package template

import (
	"encoding/json"
	"fmt"
	"path"

	"go.scnd.dev/open/pybuild/command/pybuild/procedure/project"
)

// vscodeSettings is a struct rather than a map to keep the key order of the
// serialized file stable.
type vscodeSettings struct {
	PythonPath         string `json:"python.pythonPath"`
	LintingEnabled     bool   `json:"python.linting.enabled"`
	PylintEnabled      bool   `json:"python.linting.pylintEnabled"`
	FormattingProvider string `json:"python.formatting.provider"`
	PytestEnabled      bool   `json:"python.testing.pytestEnabled"`
	UnittestEnabled    bool   `json:"python.testing.unittestEnabled"`
	AddBrackets        bool   `json:"python.autoComplete.addBrackets"`
	JediEnabled        bool   `json:"python.jediEnabled"`
}

func VscodeSettings(spec *project.Spec) ([]byte, error) {
	settings := &vscodeSettings{
		PythonPath:         path.Join(spec.VenvPath(), "bin", "python"),
		LintingEnabled:     true,
		PylintEnabled:      true,
		FormattingProvider: "autopep8",
		PytestEnabled:      true,
		UnittestEnabled:    false,
		AddBrackets:        true,
		JediEnabled:        false,
	}

	content, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize editor settings: %w", err)
	}

	return content, nil
}
