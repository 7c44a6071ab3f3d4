package model

// ConfigFilenames is the fixed precedence order of recognized template
// configuration filenames. The first match in a directory wins.
var ConfigFilenames = []string{
	"sprout.config.json",
	"sprout.config.yaml",
	"sprout.config.yml",
	".sproutrc",
	".sproutrc.json",
	".sproutrc.yaml",
	".sproutrc.yml",
}

// ProjectNameQuestion is the reserved name of the built-in project name
// question. Template-declared questions that reuse the name are overridden
// by the build-level answer during the merge stage.
const ProjectNameQuestion = "projectName"

// QuestionKind identifies the prompt type of a question.
type QuestionKind string

const (
	// QuestionInput is a free-text question.
	QuestionInput QuestionKind = "input"
	// QuestionConfirm is a yes/no question.
	QuestionConfirm QuestionKind = "confirm"
	// QuestionSelect is a single-choice question.
	QuestionSelect QuestionKind = "select"
)

// QuestionSpec describes a single interactive question.
type QuestionSpec struct {
	// Name is the answer key (required, unique within a question list).
	Name string `json:"name" yaml:"name"`
	// Kind is the prompt type. Empty defaults to input.
	Kind QuestionKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	// Message is the prompt text shown to the operator.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	// Default is the default answer (type must match the kind).
	Default interface{} `json:"default,omitempty" yaml:"default,omitempty"`
	// Choices are the options for select questions.
	Choices []string `json:"choices,omitempty" yaml:"choices,omitempty"`
	// Required rejects empty input.
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`
	// Pattern is a regex the answer must match (string answers only).
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// TemplateConfig is the template-declared configuration discovered in or
// above a staging directory. The zero value is a valid empty config.
type TemplateConfig struct {
	// Questions are asked before rendering, in declaration order.
	Questions []QuestionSpec `json:"questions,omitempty" yaml:"questions,omitempty"`
	// CompleteMessage is an optional message template rendered against the
	// merged answers and printed after a successful build.
	CompleteMessage string `json:"-" yaml:"-"`
	// Complete is an optional hook invoked after a successful build.
	// Set programmatically; nil means default success reporting.
	Complete CompletionHook `json:"-" yaml:"-"`
}

// IsEmpty reports whether the config declares nothing.
func (c TemplateConfig) IsEmpty() bool {
	return len(c.Questions) == 0 && c.CompleteMessage == "" && c.Complete == nil
}

// CompletionHook is invoked once after a build has been written to the
// destination directory.
type CompletionHook interface {
	// OnComplete receives the final build metadata and a helper bundle.
	OnComplete(meta *BuildMetadata, helpers *Helpers) error
}

// CompletionHookFunc adapts a function to the CompletionHook interface.
type CompletionHookFunc func(meta *BuildMetadata, helpers *Helpers) error

// OnComplete implements CompletionHook.
func (f CompletionHookFunc) OnComplete(meta *BuildMetadata, helpers *Helpers) error {
	return f(meta, helpers)
}

// Helpers is the bundle passed to completion hooks.
type Helpers struct {
	// Files is the final rendered file tree.
	Files FileTree
	// Info prints an informational line.
	Info func(msg string)
	// Success prints a success line.
	Success func(msg string)
	// Debug emits a formatted trace line when tracing is enabled.
	Debug func(format string, args ...interface{})
}
