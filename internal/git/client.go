// Package git provides read-only introspection of local checkouts.
package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// ErrNotARepository indicates a path that is not a git checkout
var ErrNotARepository = errors.New("not a git repository")

// ErrDetachedHead indicates a checkout whose HEAD is not on a branch,
// e.g. after a force-push followed by a hard reset to a commit.
var ErrDetachedHead = errors.New("detached HEAD")

// IsRepository reports whether path is a git checkout (including worktrees)
func IsRepository(path string) bool {
	_, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	return err == nil
}

// CurrentBranch returns the short name of the branch checked out at path.
// Returns ErrNotARepository for non-checkouts and ErrDetachedHead when the
// checkout is not on any branch.
func CurrentBranch(path string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return "", ErrNotARepository
		}
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", ErrDetachedHead
	}

	return head.Name().Short(), nil
}
