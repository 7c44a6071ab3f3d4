package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sprout-cli/sprout/internal/app"
	"github.com/sprout-cli/sprout/internal/debug"
	"github.com/sprout-cli/sprout/internal/registry"
	"github.com/sprout-cli/sprout/internal/template/model"
)

var (
	createName   string
	createSilent bool
	createSets   []string
)

var createCmd = &cobra.Command{
	Use:   "create [template] [destination]",
	Short: "Create a new project from a template",
	Long: `Create a new project directory from a template.

The template argument is a registered template name, a local directory, or
a git repository URL (optionally with "#branch"). When omitted, sprout asks
which registered template to use. The destination argument is the directory
to create; when omitted, a directory named after the project is created in
the current working directory.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "Project name (skips the project name prompt)")
	createCmd.Flags().BoolVar(&createSilent, "silent", false, "Answer questions from their defaults instead of prompting")
	createCmd.Flags().StringArrayVar(&createSets, "set", nil, "Preset an answer as key=value (repeatable)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	reg, err := registry.Load()
	if err != nil {
		return err
	}
	debug.DebugValue("registered templates", reg.Len())

	opts := &model.ProjectOptions{
		Answers: model.AnswerMap{},
	}

	if len(args) > 0 {
		opts.TemplateRef = app.ResolveTemplateName(args[0], reg)
	}
	if len(args) > 1 {
		dest, err := filepath.Abs(args[1])
		if err != nil {
			return fmt.Errorf("resolving destination path: %w", err)
		}
		opts.DestinationPath = dest
	}

	if createName != "" {
		opts.Answers[model.ProjectNameQuestion] = createName
	}
	presets, err := parseSetFlags(createSets)
	if err != nil {
		return err
	}
	opts.Answers = model.MergeAnswers(opts.Answers, presets)

	var asker model.Asker = NewSurveyAsker()
	if createSilent {
		asker = app.SilentAsker{}
	}

	builder := app.NewBuilder(asker, reg)
	builder.Info = printInfo
	builder.Success = printSuccess

	result, err := builder.Build(cmd.Context(), opts)
	if err != nil {
		return err
	}
	if result.Aborted {
		printWarning(result.AbortReason)
		return nil
	}
	debug.DebugValue("files written", result.FilesWritten)
	return nil
}

// parseSetFlags turns repeated key=value flags into an answer map.
func parseSetFlags(sets []string) (model.AnswerMap, error) {
	answers := make(model.AnswerMap, len(sets))
	for _, s := range sets {
		key, value, found := strings.Cut(s, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set value %q, expected key=value", s)
		}
		switch value {
		case "true":
			answers[key] = true
		case "false":
			answers[key] = false
		default:
			answers[key] = value
		}
	}
	return answers, nil
}
