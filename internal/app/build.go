// Package app implements the build workflows behind the CLI commands.
package app

import (
	"context"
	"fmt"

	"github.com/sprout-cli/sprout/internal/debug"
	"github.com/sprout-cli/sprout/internal/registry"
	"github.com/sprout-cli/sprout/internal/template/acquirer"
	"github.com/sprout-cli/sprout/internal/template/discovery"
	"github.com/sprout-cli/sprout/internal/template/engine"
	"github.com/sprout-cli/sprout/internal/template/model"
	"github.com/sprout-cli/sprout/internal/template/pipeline"
)

// Builder wires the build collaborators into one sequential flow.
type Builder struct {
	// Asker is the interactive prompt capability.
	Asker model.Asker
	// Engine is the render engine.
	Engine engine.Engine
	// Acquirer materializes template sources.
	Acquirer acquirer.Acquirer
	// Registry is the known-template lookup table.
	Registry *registry.Registry
	// Hook overrides the template's completion hook when non-nil.
	Hook model.CompletionHook
	// Info prints an informational line. Defaults to stdout.
	Info func(msg string)
	// Success prints a success line. Defaults to stdout.
	Success func(msg string)
}

// NewBuilder creates a Builder with default collaborators.
func NewBuilder(asker model.Asker, reg *registry.Registry) *Builder {
	return &Builder{
		Asker:    asker,
		Engine:   engine.NewEngine(),
		Acquirer: acquirer.NewAcquirer(),
		Registry: reg,
	}
}

// BuildResult holds the outcome of one build invocation.
type BuildResult struct {
	// Aborted reports the soft abort: no templates available and none
	// given. Nothing was written.
	Aborted bool
	// AbortReason is the warning to show for an aborted build.
	AbortReason string
	// DestinationPath is the directory the project was written to.
	DestinationPath string
	// FilesWritten is the number of files written.
	FilesWritten int
	// TemplateRef is the resolved template reference.
	TemplateRef string
}

// Build runs the whole scaffolding flow: resolve answers, acquire the
// template, discover its config, and run the render pipeline. Every
// failure is fatal except the soft abort, which returns a non-nil result
// with Aborted set and no error.
func (b *Builder) Build(ctx context.Context, opts *model.ProjectOptions) (*BuildResult, error) {
	debug.DebugSection("[app] Build workflow start")

	resolved, err := Resolve(opts, b.Registry, b.Asker)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return &BuildResult{
			Aborted:     true,
			AbortReason: "no templates registered and no template path given; nothing to do",
		}, nil
	}

	stagingDir, err := b.Acquirer.Acquire(ctx, resolved.TemplateRef)
	if err != nil {
		return nil, NewAcquireError("failed to acquire template", err)
	}
	debug.DebugValue("[app] Staging directory", stagingDir)

	cfg, err := discovery.Discover(stagingDir)
	if err != nil {
		return nil, NewConfigLoadError("failed to load template config", err)
	}

	// A caller-supplied hook wins over the declarative complete message.
	if b.Hook != nil {
		cfg.Complete = b.Hook
	} else if cfg.CompleteMessage != "" {
		cfg.Complete = newMessageHook(b.Engine, cfg.CompleteMessage)
	}

	p := pipeline.New(b.Asker, b.Engine)
	runResult, err := p.Run(ctx, pipeline.RunOptions{
		StagingDir: stagingDir,
		Config:     cfg,
		Options:    resolved,
	})
	if err != nil {
		return nil, NewBuildError("build failed", err)
	}

	helpers := &model.Helpers{
		Files:   runResult.Files,
		Info:    b.infoPrinter(),
		Success: b.successPrinter(),
		Debug:   debug.Debug,
	}

	if cfg.Complete != nil {
		if err := cfg.Complete.OnComplete(runResult.Meta, helpers); err != nil {
			return nil, NewHookError("completion hook failed", err)
		}
	} else {
		helpers.Success(fmt.Sprintf("Project created at %s (%d files)",
			runResult.Meta.DestinationPath, runResult.FilesWritten))
	}

	debug.Debug("[app] Build workflow completed")
	return &BuildResult{
		DestinationPath: runResult.Meta.DestinationPath,
		FilesWritten:    runResult.FilesWritten,
		TemplateRef:     resolved.TemplateRef,
	}, nil
}

// infoPrinter returns the configured Info func or a stdout default.
func (b *Builder) infoPrinter() func(string) {
	if b.Info != nil {
		return b.Info
	}
	return func(msg string) { fmt.Println(msg) }
}

// successPrinter returns the configured Success func or a stdout default.
func (b *Builder) successPrinter() func(string) {
	if b.Success != nil {
		return b.Success
	}
	return func(msg string) { fmt.Println(msg) }
}
