package model

import (
	"os"
	"strings"
)

// RefBranchSeparator separates a template source from an optional branch name.
const RefBranchSeparator = "#"

// TemplateEntry describes a registered template in the registry.
type TemplateEntry struct {
	// Source is the template location: a local path or a git repository URL.
	Source string `yaml:"source" json:"source"`
	// Branch is the branch to check out for repository sources (optional).
	Branch string `yaml:"branch,omitempty" json:"branch,omitempty"`
	// Description is a human-readable description shown in listings.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Ref returns the full template reference for the entry, appending the
// branch suffix when the entry declares one.
func (e TemplateEntry) Ref() string {
	if e.Branch == "" {
		return e.Source
	}
	return e.Source + RefBranchSeparator + e.Branch
}

// SplitRef splits a template reference into its source and branch parts.
// A reference without a branch suffix yields an empty branch.
func SplitRef(ref string) (source, branch string) {
	if idx := strings.LastIndex(ref, RefBranchSeparator); idx != -1 {
		return ref[:idx], ref[idx+1:]
	}
	return ref, ""
}

// ProjectOptions holds the progressively filled state of one build
// invocation. It is owned exclusively by that build and never shared.
type ProjectOptions struct {
	// TemplateRef is the template reference, possibly with a branch suffix.
	// Empty until the resolver selects one.
	TemplateRef string
	// DestinationPath is the explicit destination directory (optional).
	DestinationPath string
	// Answers holds build-level answers collected by the resolver.
	Answers AnswerMap
}

// BuildMetadata is the per-build mutable context shared by the pipeline
// stages. Stages run strictly sequentially, so no locking is needed.
type BuildMetadata struct {
	// DestinationPath is the resolved destination directory.
	DestinationPath string
	// Answers is the merged answer map used for rendering.
	Answers AnswerMap
}

// TemplateFile represents a single file enumerated from a staging directory.
type TemplateFile struct {
	// Path is the relative path from the staging root.
	Path string
	// Content is the file content.
	Content []byte
	// Mode is the file permission mode.
	Mode os.FileMode
	// IsBinary indicates the file must be copied verbatim, never rendered.
	IsBinary bool
}

// FileTree is the set of files to be rendered and written, in staging
// enumeration order. Rendering mutates entries in place.
type FileTree []TemplateFile
