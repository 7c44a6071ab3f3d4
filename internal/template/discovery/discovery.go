// Package discovery locates and loads the template-declared configuration
// from a staging directory.
package discovery

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sprout-cli/sprout/internal/debug"
	"github.com/sprout-cli/sprout/internal/template/model"
)

// rawConfig is the on-disk shape of a template configuration.
type rawConfig struct {
	Questions []model.QuestionSpec `json:"questions" yaml:"questions"`
	Complete  *rawComplete         `json:"complete" yaml:"complete"`
}

// rawComplete holds the declarative completion section.
type rawComplete struct {
	Message string `json:"message" yaml:"message"`
}

// Discover searches for a configuration artifact starting at startDir and
// ascending to parent directories. A missing configuration is not an error
// and yields an empty config; a malformed one is fatal.
func Discover(startDir string) (*model.TemplateConfig, error) {
	debug.DebugSection("[discovery] Config search start")
	debug.DebugValue("[discovery] Start directory", startDir)

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, NewSearchError(startDir, err)
	}

	for {
		for _, name := range model.ConfigFilenames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err != nil || info.IsDir() {
				continue
			}
			debug.DebugValue("[discovery] Found config", candidate)
			return loadConfigFile(candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	debug.Debug("[discovery] No config found, using empty config")
	return &model.TemplateConfig{}, nil
}

// loadConfigFile reads and parses a single configuration file.
func loadConfigFile(path string) (*model.TemplateConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewLoadError(path, err)
	}

	raw, err := parseConfig(path, data)
	if err != nil {
		return nil, NewParseError(path, err)
	}

	if err := validateQuestions(raw.Questions); err != nil {
		return nil, NewParseError(path, err)
	}

	cfg := &model.TemplateConfig{
		Questions: raw.Questions,
	}
	if raw.Complete != nil {
		cfg.CompleteMessage = raw.Complete.Message
	}

	debug.DebugValue("[discovery] Declared questions", len(cfg.Questions))
	return cfg, nil
}

// parseConfig decodes data according to the file's extension. The
// extensionless .sproutrc form accepts JSON first, then YAML.
func parseConfig(path string, data []byte) (*rawConfig, error) {
	var raw rawConfig

	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if jsonErr := json.Unmarshal(data, &raw); jsonErr != nil {
			raw = rawConfig{}
			if yamlErr := yaml.Unmarshal(data, &raw); yamlErr != nil {
				return nil, fmt.Errorf("not valid JSON (%v) nor YAML (%v)", jsonErr, yamlErr)
			}
		}
	}

	return &raw, nil
}

// validateQuestions checks structural requirements on declared questions.
func validateQuestions(questions []model.QuestionSpec) error {
	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.Name == "" {
			return fmt.Errorf("question %d is missing required field: name", i)
		}
		if seen[q.Name] {
			return fmt.Errorf("duplicate question name: %s", q.Name)
		}
		seen[q.Name] = true
		if q.Kind == model.QuestionSelect && len(q.Choices) == 0 {
			return fmt.Errorf("select question %q has no choices", q.Name)
		}
	}
	return nil
}
