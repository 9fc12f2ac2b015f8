package template

import (
	"fmt"
	"strings"

	"go.scnd.dev/open/pybuild/command/pybuild/procedure/project"
)

func Readme(spec *project.Spec) ([]byte, error) {
	var content strings.Builder

	content.WriteString(fmt.Sprintf("# %s Python Project Builder\n", *spec.Directory))
	content.WriteString("\n## Introduction\n")
	content.WriteString("This script automates the process of setting up a new Python project with a dedicated virtual environment, a SQLite database, and a Docker environment. The script offers several configurable options:\n")
	content.WriteString("- `--dir`: The directory name for the new project. Default is 'project'.\n")
	content.WriteString("- `--venv`: The name of the Python virtual environment to create. Default is 'venv'.\n")
	content.WriteString("- `--packages`: A comma-separated list of Python packages to install in the virtual environment. Default is an empty list.\n")
	content.WriteString("- `--python`: The version of Python to use in the virtual environment. Default is '3.11.3'.\n")
	content.WriteString("\n## Example Usage\n")
	content.WriteString("To create a new project with the directory name 'my_cool_project', a virtual environment named 'my_env', and the packages 'numpy', 'pandas', and 'matplotlib' installed, using Python version 3.11.3, you would run the following command:\n")
	content.WriteString("```pybuild create --dir my_cool_project --venv my_env --packages numpy,pandas,matplotlib --python 3.11.3```\n")
	content.WriteString("\n## Docker Commands\n")
	content.WriteString("Here are some Docker commands you might find useful:\n")
	content.WriteString("### Build Docker Image\n")
	content.WriteString("```docker-compose build```\n")
	content.WriteString("### Start Docker Containers\n")
	content.WriteString("```docker-compose up -d```\n")
	content.WriteString("### Stop Docker Containers\n")
	content.WriteString("```docker-compose down```\n")
	content.WriteString("### List Docker Containers\n")
	content.WriteString("```docker ps -a```\n")
	content.WriteString("### Execute a Command Inside a Docker Container\n")
	content.WriteString("```docker exec -it <container-id> <command>```\n")
	content.WriteString("Replace `<container-id>` with the ID of your Docker container, and `<command>` with the command you want to execute.\n")
	content.WriteString("For example, to run a Python script named 'openai_script.py' located in the '/app' directory inside the Docker container, you would use the following command:\n")
	content.WriteString("```docker exec -it <container-id> python /app/openai_script.py```\n")
	content.WriteString("\n## Project Structure\n")
	content.WriteString("The script creates the following project structure:\n")
	content.WriteString("```\nproject/\n│   ├── app/\n│   ├── config/\n│   │   ├── .env\n│   │   ├── .gitignore\n│   │   ├── .vscode/\n│   │   ├── Dockerfile\n│   │   ├── README.md\n│   │   ├── RONTESTING/\n│   │   ├── database.sqlite3\n│   │   ├── docker-compose.yml\n│   │   ├── requirements.txt\n│   │   ├── tests/\n│   │   └── venv/\n│   └── WORKSPACE/\n```\n")
	content.WriteString("\n## Activating the Virtual Environment\n")
	content.WriteString("After running the script, you can activate the virtual environment and start the Docker containers using the following command:\n")
	content.WriteString("```source <project-dir>/config/<venv>/bin/activate && cd <project-dir>/config/ && docker-compose up -d```\n")
	content.WriteString("Replace `<project-dir>` with the name of your project directory, and `<venv>` with the name of your virtual environment.\n")

	return []byte(content.String()), nil
}
