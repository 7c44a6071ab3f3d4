package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sprout-cli/sprout/internal/template/model"
)

// fixturePath returns the absolute path to a fixture template directory.
func fixturePath(t *testing.T, name string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "fixtures", "templates", name))
	if err != nil {
		t.Fatalf("failed to resolve fixture path: %v", err)
	}
	return path
}

// writeRegistry writes a registry file mapping names to local template
// sources and points SPROUT_REGISTRY at it.
func writeRegistry(t *testing.T, templates map[string]string) {
	t.Helper()
	var body string
	if len(templates) == 0 {
		body = "templates: {}\n"
	} else {
		body = "templates:\n"
		for name, source := range templates {
			body += fmt.Sprintf("  %s:\n    source: %s\n", name, source)
		}
	}
	path := filepath.Join(t.TempDir(), "registry.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write registry file: %v", err)
	}
	t.Setenv("SPROUT_REGISTRY", path)
}

// stubAsker answers questions from a fixed map. Questions without an
// entry fall back to their default.
type stubAsker struct {
	answers model.AnswerMap
}

func (s *stubAsker) Ask(questions []model.QuestionSpec) (model.AnswerMap, error) {
	out := make(model.AnswerMap, len(questions))
	for _, q := range questions {
		if v, ok := s.answers[q.Name]; ok {
			out[q.Name] = v
			continue
		}
		out[q.Name] = q.Default
	}
	return out, nil
}

// readFile reads a rendered output file or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
