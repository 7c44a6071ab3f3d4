// Package engine provides the template substitution engine used by the
// render pipeline.
package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sprout-cli/sprout/internal/template/model"
)

// Engine renders template text against an answer map.
type Engine interface {
	// Render substitutes every marker in text with its value from data.
	// Returns an error for markers that name an unknown variable.
	Render(text string, data model.AnswerMap) (string, error)
}

// markerPattern matches substitution markers of the form <%= name %>.
// The name must be a plain identifier.
var markerPattern = regexp.MustCompile(`<%=\s*([A-Za-z_][A-Za-z0-9_]*)\s*%>`)

// SubstEngine is the default Engine. It replaces <%= name %> markers with
// the value of the named variable; text without markers passes through
// unchanged.
type SubstEngine struct{}

// NewEngine creates the default substitution engine.
func NewEngine() Engine {
	return SubstEngine{}
}

// Render implements Engine.
func (SubstEngine) Render(text string, data model.AnswerMap) (string, error) {
	var renderErr error

	rendered := markerPattern.ReplaceAllStringFunc(text, func(marker string) string {
		if renderErr != nil {
			return marker
		}
		name := markerPattern.FindStringSubmatch(marker)[1]
		value, ok := data[name]
		if !ok {
			renderErr = NewUndefinedVariableError(name)
			return marker
		}
		return formatValue(value)
	})

	if renderErr != nil {
		return "", renderErr
	}
	return rendered, nil
}

// formatValue converts an answer value to its textual form.
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// VariableNames returns the distinct variable names referenced by markers
// in text, in order of first appearance.
func VariableNames(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, match := range markerPattern.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// ContainsMarker reports whether text contains at least one substitution
// marker.
func ContainsMarker(text string) bool {
	return strings.Contains(text, "<%=") && markerPattern.MatchString(text)
}
