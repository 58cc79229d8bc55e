package stack

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/data-yaml/qen/internal/gh"
	"github.com/data-yaml/qen/internal/git"
	"github.com/data-yaml/qen/internal/model"
)

// BranchUpdater is the remote mutation sink: it rebases/updates one PR's
// branch against its current base.
type BranchUpdater interface {
	UpdateBranch(ctx context.Context, owner, repo string, number int, expectedHeadSHA string) error
}

// Restacker replays update-branch over every PR of every stack, parent
// before child. In dry-run mode it records what would happen without
// touching the sink.
type Restacker struct {
	Updater BranchUpdater
	DryRun  bool
}

// NewRestacker creates a restacker backed by the given mutation sink
func NewRestacker(updater BranchUpdater, dryRun bool) *Restacker {
	return &Restacker{Updater: updater, DryRun: dryRun}
}

// Restack processes every stack and returns per-PR outcomes grouped by root
// branch, in stack order. Entries are processed strictly parent before
// child: updating a child before its parent has been updated against its
// own base would produce a stale merge.
//
// Individual failures never stop the run. A PR without a number, an
// unparsable repo URL, or a failed update is recorded and its stack-mates
// and the remaining stacks are still attempted. There are no retries and
// no rollback of already-updated entries.
func (r *Restacker) Restack(ctx context.Context, stacks map[string]model.Stack) map[string][]model.RestackOutcome {
	results := make(map[string][]model.RestackOutcome, len(stacks))

	roots := make([]string, 0, len(stacks))
	for root := range stacks {
		roots = append(roots, root)
	}
	sort.Strings(roots)

	for _, root := range roots {
		s := stacks[root]
		outcomes := make([]model.RestackOutcome, 0, s.Len())
		for _, pr := range s.PRs {
			outcomes = append(outcomes, r.restackOne(ctx, pr))
		}
		results[root] = outcomes
	}

	return results
}

func (r *Restacker) restackOne(ctx context.Context, pr model.PrInfo) model.RestackOutcome {
	outcome := model.RestackOutcome{PR: pr}

	if !pr.HasPR || pr.Number == 0 {
		outcome.Reason = fmt.Sprintf("no PR number for branch %s", pr.Branch)
		return outcome
	}

	remote, err := git.ParseRemoteURL(pr.RepoURL)
	if err != nil {
		outcome.Reason = err.Error()
		return outcome
	}

	if r.DryRun {
		outcome.Updated = true
		return outcome
	}

	if err := r.Updater.UpdateBranch(ctx, remote.Owner, remote.Repo, pr.Number, ""); err != nil {
		// Nothing to update is an idempotent success, not an error
		if !errors.Is(err, gh.ErrAlreadyUpToDate) {
			outcome.Reason = err.Error()
			return outcome
		}
	}

	outcome.Updated = true
	return outcome
}
