package template

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
	"go.scnd.dev/open/pybuild/command/pybuild/procedure/project"
	"gopkg.in/yaml.v3"
)

// Dockerfile renders the container build recipe: dependency install first so
// the layer is cached, then the source copy, then an idle command keeping
// the container alive for exec sessions.
func Dockerfile(spec *project.Spec) ([]byte, error) {
	content := dedent.Dedent(fmt.Sprintf(`
		FROM python:%s
		WORKDIR /app
		COPY requirements.txt .
		RUN pip install -r requirements.txt
		COPY . .
		CMD ["tail", "-f", "/dev/null"]
	`, *spec.Python))
	return []byte(strings.TrimPrefix(content, "\n")), nil
}

type composeService struct {
	Build   string   `yaml:"build"`
	Volumes []string `yaml:"volumes"`
	Ports   []string `yaml:"ports"`
}

type composeDefinition struct {
	Version  string                     `yaml:"version"`
	Services map[string]*composeService `yaml:"services"`
}

// DockerCompose renders a single service named after the project directory,
// mounting the app, config, workspace, and scratch directories as volumes.
func DockerCompose(spec *project.Spec) ([]byte, error) {
	definition := &composeDefinition{
		Version: "3.9",
		Services: map[string]*composeService{
			*spec.Directory: {
				Build: "./",
				Volumes: []string{
					"../app:/app",
					".:/config/",
					"../WORKSPACE:/workspace",
					"./config/RONTESTING:/rontesting",
				},
				Ports: []string{"8000:8000"},
			},
		},
	}

	content, err := yaml.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize compose definition: %w", err)
	}

	return content, nil
}
