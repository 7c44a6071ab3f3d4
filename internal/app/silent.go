package app

import (
	"fmt"

	"github.com/sprout-cli/sprout/internal/template/model"
)

// SilentAsker answers every question from its declared default without
// any terminal interaction. Required questions without a default fail.
type SilentAsker struct{}

// Ask implements model.Asker.
func (SilentAsker) Ask(questions []model.QuestionSpec) (model.AnswerMap, error) {
	answers := make(model.AnswerMap, len(questions))
	for _, q := range questions {
		if q.Default == nil {
			if q.Required {
				return nil, fmt.Errorf("question %q is required but has no default (silent mode)", q.Name)
			}
			answers[q.Name] = zeroAnswer(q.Kind)
			continue
		}
		answers[q.Name] = q.Default
	}
	return answers, nil
}

// zeroAnswer returns the empty answer for a question kind.
func zeroAnswer(kind model.QuestionKind) interface{} {
	if kind == model.QuestionConfirm {
		return false
	}
	return ""
}
