package app

import (
	"fmt"

	"github.com/sprout-cli/sprout/internal/debug"
	"github.com/sprout-cli/sprout/internal/registry"
	"github.com/sprout-cli/sprout/internal/template/model"
)

// TemplateQuestion is the name of the built-in template-selection question.
const TemplateQuestion = "template"

// ProjectNamePattern validates the project name answer. The prompt accepts
// any value containing a match of this pattern; it is deliberately not
// anchored (see DESIGN.md).
const ProjectNamePattern = `[A-Za-z0-9_-]+`

// Resolve builds and asks the built-in questions, filling the options with
// the chosen template reference and the collected answers.
//
// A nil, nil return is the soft abort: no template reference was supplied
// and no templates are registered. The caller reports a warning and exits
// without building.
func Resolve(opts *model.ProjectOptions, reg *registry.Registry, asker model.Asker) (*model.ProjectOptions, error) {
	debug.DebugSection("[app] Resolve start")
	debug.DebugValue("[app] Explicit template ref", opts.TemplateRef)

	var questions []model.QuestionSpec

	// Template selection comes first: nothing about the project is asked
	// before the template to scaffold from is known.
	askTemplate := opts.TemplateRef == ""
	if askTemplate {
		names := reg.Names()
		if len(names) == 0 {
			debug.Debug("[app] No templates registered and no explicit template given")
			return nil, nil
		}
		questions = append(questions, model.QuestionSpec{
			Name:     TemplateQuestion,
			Kind:     model.QuestionSelect,
			Message:  "Which template do you want to use?",
			Choices:  names,
			Default:  names[0],
			Required: true,
		})
	}

	nameQuestion := model.QuestionSpec{
		Name:     model.ProjectNameQuestion,
		Kind:     model.QuestionInput,
		Message:  "Project name",
		Required: true,
		Pattern:  ProjectNamePattern,
	}
	if preset, ok := opts.Answers[model.ProjectNameQuestion].(string); ok && preset != "" {
		nameQuestion.Default = preset
	}
	questions = append(questions, nameQuestion)

	answers, err := asker.Ask(questions)
	if err != nil {
		return nil, NewResolveError("failed to collect answers", err)
	}
	opts.Answers = model.MergeAnswers(opts.Answers, answers)

	if askTemplate {
		name, _ := answers[TemplateQuestion].(string)
		entry, ok := reg.Lookup(name)
		if !ok {
			return nil, NewResolveError(fmt.Sprintf("unknown template: %s", name), nil)
		}
		opts.TemplateRef = entry.Ref()
		debug.DebugValue("[app] Selected template", name)
	}
	debug.DebugValue("[app] Resolved template ref", opts.TemplateRef)

	return opts, nil
}

// ResolveTemplateName turns a template argument into a full reference:
// registry names resolve through the registry, everything else is treated
// as a direct path or repository locator.
func ResolveTemplateName(arg string, reg *registry.Registry) string {
	if entry, ok := reg.Lookup(arg); ok {
		return entry.Ref()
	}
	return arg
}
