// Package acquirer materializes template sources into local staging
// directories.
package acquirer

import (
	"context"
	"os"
	"strings"

	"github.com/sprout-cli/sprout/internal/debug"
	"github.com/sprout-cli/sprout/internal/template/model"
)

// Acquirer produces a staging directory from a template reference.
type Acquirer interface {
	// Acquire materializes the referenced template into a freshly allocated
	// temporary directory and returns its path. The staging directory is
	// owned by the caller and is not cleaned up automatically.
	Acquire(ctx context.Context, ref string) (string, error)
}

// DefaultAcquirer implements Acquirer for git repositories and local paths.
type DefaultAcquirer struct{}

// NewAcquirer creates a new DefaultAcquirer.
func NewAcquirer() Acquirer {
	return &DefaultAcquirer{}
}

// Acquire resolves the reference shape and materializes the template.
// Repository-shaped references are cloned; existing local paths are copied.
// Anything else fails with a not found error.
func (a *DefaultAcquirer) Acquire(ctx context.Context, ref string) (string, error) {
	debug.DebugSection("[acquirer] Acquire start")
	debug.DebugValue("[acquirer] Reference", ref)

	if ref == "" {
		return "", NewInvalidRefError(ref, nil)
	}

	source, branch := model.SplitRef(ref)
	debug.DebugValue("[acquirer] Source", source)
	debug.DebugValue("[acquirer] Branch", branch)

	// Allocate a fresh staging directory per call, never reused.
	stagingDir, err := os.MkdirTemp("", "sprout-staging-*")
	if err != nil {
		return "", NewCopyError(ref, err)
	}
	debug.DebugValue("[acquirer] Staging directory", stagingDir)

	if IsRemoteRef(source) {
		if err := cloneRepository(ctx, source, branch, stagingDir); err != nil {
			debug.Debug("[acquirer] Clone failed: %v", err)
			return "", err
		}
		debug.Debug("[acquirer] Clone completed")
		return stagingDir, nil
	}

	info, err := os.Stat(source)
	if err != nil || !info.IsDir() {
		debug.Debug("[acquirer] Not a repository URL and no such local directory")
		return "", NewNotFoundError(ref)
	}

	// Additive copy: the staging directory is not cleared first.
	if err := copyTree(source, stagingDir); err != nil {
		debug.Debug("[acquirer] Copy failed: %v", err)
		return "", NewCopyError(ref, err)
	}
	debug.Debug("[acquirer] Copy completed")

	return stagingDir, nil
}

// IsRemoteRef reports whether source has the shape of a remote repository
// locator rather than a filesystem path.
func IsRemoteRef(source string) bool {
	return strings.Contains(source, "://") || strings.HasPrefix(source, "git@")
}
