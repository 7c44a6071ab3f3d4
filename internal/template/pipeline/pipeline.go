// Package pipeline implements the three-stage build that turns a staged
// template into rendered files at a destination directory.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/sprout-cli/sprout/internal/debug"
	"github.com/sprout-cli/sprout/internal/template/engine"
	"github.com/sprout-cli/sprout/internal/template/model"
)

// Pipeline runs the answer collection, merge, and render stages over a
// staged template, then writes the result to the destination directory.
type Pipeline struct {
	asker  model.Asker
	engine engine.Engine
	writer Writer
}

// New creates a Pipeline with the given prompt capability and render engine.
func New(asker model.Asker, eng engine.Engine) *Pipeline {
	return &Pipeline{
		asker:  asker,
		engine: eng,
		writer: NewFileWriter(),
	}
}

// RunOptions configures one pipeline run.
type RunOptions struct {
	// StagingDir is the acquired template's staging directory.
	StagingDir string
	// Config is the template-declared configuration (never nil; empty is valid).
	Config *model.TemplateConfig
	// Options is the build-level state filled by the resolver.
	Options *model.ProjectOptions
}

// RunResult holds the outcome of a pipeline run.
type RunResult struct {
	// Meta is the final build metadata.
	Meta *model.BuildMetadata
	// Files is the rendered file tree that was written.
	Files model.FileTree
	// FilesWritten is the number of files written to the destination.
	FilesWritten int
}

// Run executes the stages in order. Nothing is written until every file
// has rendered successfully.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	debug.DebugSection("[pipeline] Run start")
	debug.DebugValue("[pipeline] Staging directory", opts.StagingDir)

	if err := validateRunOptions(opts); err != nil {
		return nil, err
	}

	tree, err := CollectTree(opts.StagingDir)
	if err != nil {
		return nil, NewCollectError(opts.StagingDir, err)
	}

	meta := &model.BuildMetadata{}

	// Destination is resolved once, before any stage runs.
	dest, err := resolveDestination(opts.Options)
	if err != nil {
		return nil, err
	}
	meta.DestinationPath = dest
	debug.DebugValue("[pipeline] Destination", dest)

	// Stage 1: collect template-declared answers.
	if err := p.collectAnswers(meta, opts.Config); err != nil {
		return nil, err
	}

	// Stage 2: build-level answers win over template-declared ones.
	meta.Answers = model.MergeAnswers(meta.Answers, opts.Options.Answers)
	debug.DebugValue("[pipeline] Merged answer count", len(meta.Answers))

	// Stage 3: render every file against the merged answers.
	if err := p.renderTree(ctx, tree, meta); err != nil {
		return nil, err
	}

	written, err := p.writer.WriteTree(tree, meta.DestinationPath)
	if err != nil {
		return nil, err
	}
	debug.Debug("[pipeline] Wrote %d files to %s", written, meta.DestinationPath)

	return &RunResult{
		Meta:         meta,
		Files:        tree,
		FilesWritten: written,
	}, nil
}

// collectAnswers runs the template-declared questions, storing the result
// on the metadata. No declared questions yields an empty answer map.
func (p *Pipeline) collectAnswers(meta *model.BuildMetadata, cfg *model.TemplateConfig) error {
	if len(cfg.Questions) == 0 {
		meta.Answers = model.AnswerMap{}
		debug.Debug("[pipeline] No template-declared questions")
		return nil
	}

	debug.Debug("[pipeline] Asking %d template-declared questions", len(cfg.Questions))
	answers, err := p.asker.Ask(cfg.Questions)
	if err != nil {
		return NewPromptError(err)
	}
	meta.Answers = answers
	return nil
}

// renderTree renders every non-binary file concurrently. The first failure
// wins; remaining renders are not cancelled, which is harmless because no
// write happens unless the whole stage succeeds.
func (p *Pipeline) renderTree(ctx context.Context, tree model.FileTree, meta *model.BuildMetadata) error {
	var g errgroup.Group

	for i := range tree {
		file := &tree[i]
		if file.IsBinary {
			debug.Debug("[pipeline] Copying binary file verbatim: %s", file.Path)
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rendered, err := p.engine.Render(string(file.Content), meta.Answers)
			if err != nil {
				return NewRenderError(file.Path, err)
			}
			file.Content = []byte(rendered)
			return nil
		})
	}

	return g.Wait()
}

// resolveDestination returns the explicit destination path if supplied,
// otherwise joins the working directory with the projectName answer
// (empty string if absent).
func resolveDestination(opts *model.ProjectOptions) (string, error) {
	if opts.DestinationPath != "" {
		return opts.DestinationPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	projectName := ""
	if v, ok := opts.Answers[model.ProjectNameQuestion].(string); ok {
		projectName = v
	}
	return filepath.Join(cwd, projectName), nil
}

// validateRunOptions validates RunOptions.
func validateRunOptions(opts RunOptions) error {
	if opts.StagingDir == "" {
		return fmt.Errorf("staging directory cannot be empty")
	}
	if opts.Config == nil {
		return fmt.Errorf("template config cannot be nil")
	}
	if opts.Options == nil {
		return fmt.Errorf("project options cannot be nil")
	}
	return nil
}
