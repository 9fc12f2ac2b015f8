package template

import (
	"strings"

	"go.scnd.dev/open/pybuild/command/pybuild/procedure/project"
)

// Env renders the environment file: empty-valued keys grouped by provider,
// ready to be filled in by hand.
func Env(spec *project.Spec) ([]byte, error) {
	vars := []string{
		"#openai",
		"OPENAI_API_KEY=",
		"#aws",
		"S3_BUCKET=",
		"AWS_ACCESS_KEY_ID=",
		"AWS_SECRET_ACCESS_KEY=",
		"AWS_REGION=",
		"#django",
		"DJANGO_SECRET_KEY=",
		"#pinecone",
		"DATASTORE=pinecone",
		"PINECONE_API_KEY=",
		"PINECONE_ENVIRONMENT=",
		"PINECONE_INDEX=",
	}
	return []byte(strings.Join(vars, "\n")), nil
}
