package printer

import (
	"fmt"
	"io"
	"strings"
)

const bannerWidth = 118

// PrintActivation prints the shell command that sources the virtual
// environment and starts the container stack.
func PrintActivation(w io.Writer, directory string, venvPath string) {
	banner := strings.Repeat("#", bannerWidth)
	fmt.Fprintf(w, "\n%s\n\n", banner)
	fmt.Fprintf(w, "To activate the virtual environment, run:\n")
	fmt.Fprintf(w, "source %s/%s/bin/activate && cd %s/config/ && docker-compose up -d\n\n", directory, venvPath, directory)
	fmt.Fprintf(w, "%s\n\n", banner)
}

func PrintExampleUsage(w io.Writer) {
	banner := strings.Repeat("#", bannerWidth)
	fmt.Fprintf(w, "\n%s\n\n", banner)
	fmt.Fprintf(w, "Example usage: pybuild create --dir my_cool_project --venv my_env --packages numpy,pandas,matplotlib --python 3.11.3\n\n")
	fmt.Fprintf(w, "%s\n\n", banner)
}
