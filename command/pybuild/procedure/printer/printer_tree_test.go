package printer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrintTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	for _, directory := range []string{"app", "config/tests", "config/env1/bin"} {
		if err := os.MkdirAll(filepath.Join(root, directory), 0755); err != nil {
			t.Fatalf("Failed to prepare directory: %v", err)
		}
	}
	for _, file := range []string{"app/openai_script.py", "config/.env", ".DS_Store"} {
		if err := os.WriteFile(filepath.Join(root, file), []byte{}, 0644); err != nil {
			t.Fatalf("Failed to prepare file: %v", err)
		}
	}

	var out bytes.Buffer
	if err := PrintTree(&out, root, []string{"env1", ".DS_Store"}); err != nil {
		t.Fatalf("Failed to print tree: %v", err)
	}

	tree := out.String()
	if !strings.HasPrefix(tree, "demo") {
		t.Errorf("Expected tree rooted at demo, got %q", strings.SplitN(tree, "\n", 2)[0])
	}
	for _, want := range []string{"app", "openai_script.py", "config", "tests", ".env"} {
		if !strings.Contains(tree, want) {
			t.Errorf("Expected tree to contain %s", want)
		}
	}
	for _, unwanted := range []string{"env1", ".DS_Store"} {
		if strings.Contains(tree, unwanted) {
			t.Errorf("Expected tree to exclude %s", unwanted)
		}
	}
}

func TestPrintBanners(t *testing.T) {
	var out bytes.Buffer
	PrintActivation(&out, "demo", "config/env1")
	PrintExampleUsage(&out)

	text := out.String()
	if !strings.Contains(text, "source demo/config/env1/bin/activate && cd demo/config/ && docker-compose up -d") {
		t.Errorf("Expected activation command, got %q", text)
	}
	if !strings.Contains(text, "Example usage: pybuild create") {
		t.Error("Expected example usage line")
	}
	if !strings.Contains(text, strings.Repeat("#", 118)) {
		t.Error("Expected banner line")
	}
}
