package template

import (
	"path"

	"go.scnd.dev/open/pybuild/command/pybuild/procedure/project"
)

// File binds one output path, relative to the project root, to its content
// generator. Every generator is a pure function of the spec: the same spec
// renders byte-identical content.
type File struct {
	Path   string
	Render func(spec *project.Spec) ([]byte, error)
}

func Set() []*File {
	return []*File{
		{Path: path.Join("config", "database.sqlite3"), Render: Database},
		{Path: "pytest.ini", Render: PytestConfig},
		{Path: path.Join("config", "README.md"), Render: Readme},
		{Path: path.Join("app", "openai_script.py"), Render: OpenaiScript},
		{Path: path.Join("config", ".env"), Render: Env},
		{Path: path.Join("config", ".gitignore"), Render: Gitignore},
		{Path: path.Join("config", ".vscode", "settings.json"), Render: VscodeSettings},
		{Path: path.Join("config", "Dockerfile"), Render: Dockerfile},
		{Path: path.Join("config", "docker-compose.yml"), Render: DockerCompose},
		{Path: path.Join("config", ".dockerignore"), Render: Dockerignore},
		{Path: path.Join("config", "tests", "test_initial.py"), Render: InitialTest},
	}
}

// Database renders the placeholder database file. SQLite treats an empty
// file as a valid database, so no driver is involved.
func Database(spec *project.Spec) ([]byte, error) {
	return []byte{}, nil
}
