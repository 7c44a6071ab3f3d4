package acquirer

import (
	"context"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/sprout-cli/sprout/internal/debug"
)

// cloneRepository clones a repository into the staging directory. A branch
// name selects a non-default branch; the clone is shallow since only the
// working tree matters for scaffolding.
func cloneRepository(ctx context.Context, url, branch, stagingDir string) error {
	opts := &git.CloneOptions{
		URL:   url,
		Depth: 1,
	}
	if branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(branch)
		opts.SingleBranch = true
	}

	debug.Debug("[acquirer] Cloning %s into %s", url, stagingDir)
	if _, err := git.PlainCloneContext(ctx, stagingDir, false, opts); err != nil {
		if err == git.ErrRepositoryNotExists || err == plumbing.ErrReferenceNotFound {
			return NewNotFoundError(url)
		}
		return NewCloneError(url, err)
	}
	return nil
}
