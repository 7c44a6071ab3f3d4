package cli

import (
	"fmt"
	"regexp"

	"github.com/AlecAivazis/survey/v2"

	"github.com/sprout-cli/sprout/internal/template/model"
)

// SurveyAsker asks questions interactively on the terminal.
type SurveyAsker struct{}

// NewSurveyAsker creates a terminal-backed asker.
func NewSurveyAsker() *SurveyAsker {
	return &SurveyAsker{}
}

// Ask prompts for each question in order and collects the answers.
func (a *SurveyAsker) Ask(questions []model.QuestionSpec) (model.AnswerMap, error) {
	answers := make(model.AnswerMap, len(questions))
	for _, q := range questions {
		value, err := a.askOne(q)
		if err != nil {
			return nil, err
		}
		answers[q.Name] = value
	}
	return answers, nil
}

func (a *SurveyAsker) askOne(q model.QuestionSpec) (interface{}, error) {
	var opts []survey.AskOpt
	if q.Required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	if q.Pattern != "" {
		validator, err := matchPattern(q.Pattern)
		if err != nil {
			return nil, err
		}
		opts = append(opts, survey.WithValidator(validator))
	}

	switch q.Kind {
	case model.QuestionConfirm:
		defaultValue := false
		if b, ok := q.Default.(bool); ok {
			defaultValue = b
		}
		var answer bool
		prompt := &survey.Confirm{
			Message: q.Message,
			Default: defaultValue,
		}
		if err := survey.AskOne(prompt, &answer, opts...); err != nil {
			return nil, err
		}
		return answer, nil

	case model.QuestionSelect:
		var answer string
		prompt := &survey.Select{
			Message: q.Message,
			Options: q.Choices,
		}
		if d, ok := q.Default.(string); ok && d != "" {
			prompt.Default = d
		}
		if err := survey.AskOne(prompt, &answer, opts...); err != nil {
			return nil, err
		}
		return answer, nil

	default:
		var answer string
		prompt := &survey.Input{
			Message: q.Message,
		}
		if d, ok := q.Default.(string); ok {
			prompt.Default = d
		}
		if err := survey.AskOne(prompt, &answer, opts...); err != nil {
			return nil, err
		}
		return answer, nil
	}
}

// matchPattern builds a validator that accepts any answer containing a
// match of the pattern. The pattern is not anchored.
func matchPattern(pattern string) (survey.Validator, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid question pattern %q: %w", pattern, err)
	}
	return func(val interface{}) error {
		s, ok := val.(string)
		if !ok {
			return nil
		}
		if !re.MatchString(s) {
			return fmt.Errorf("answer must match pattern %q", pattern)
		}
		return nil
	}, nil
}
