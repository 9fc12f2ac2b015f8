package template

import (
	"strings"

	"github.com/lithammer/dedent"
	"go.scnd.dev/open/pybuild/command/pybuild/procedure/project"
)

// OpenaiScript renders the starter application script. The credential is
// read from the generated env file at runtime, never embedded.
func OpenaiScript(spec *project.Spec) ([]byte, error) {
	content := `import openai
from dotenv import load_dotenv
import os

# Load .env file
load_dotenv("../config/.env")

# Get API Key from .env
OPENAI_API_KEY = os.getenv("OPENAI_API_KEY")

# Set OpenAI API Key
openai.api_key = OPENAI_API_KEY

# Prepare messages
messages = [
    {"role": "system", "content": "You are a helpful assistant."},
    {"role": "user", "content": "Translate the following English text to French: 'Hello, how are you?'"}
]

# Generate response
response = openai.ChatCompletion.create(
    model="gpt-3.5-turbo",
    messages=messages,
    max_tokens=60
)

print(response['choices'][0]['message']['content'])`
	return []byte(content), nil
}

func PytestConfig(spec *project.Spec) ([]byte, error) {
	content := dedent.Dedent(`
		[pytest]
		python_files = tests.py test_*.py *_tests.py
	`)
	return []byte(strings.TrimSpace(content)), nil
}

// InitialTest renders one trivially-passing test proving the test runner is
// wired correctly.
func InitialTest(spec *project.Spec) ([]byte, error) {
	return []byte("def test_initial():\n    assert True"), nil
}
