// Package stack implements the PR stack discovery and restacking engine:
// fetching per-repository PR snapshots, assembling the base-branch
// dependency graph into ordered stacks, and replaying update-branch calls
// over a stack in parent-before-child order.
package stack

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/data-yaml/qen/internal/config"
	"github.com/data-yaml/qen/internal/gh"
	"github.com/data-yaml/qen/internal/git"
	"github.com/data-yaml/qen/internal/model"
)

// fetchTimeout bounds a single PR query against the data source
const fetchTimeout = 10 * time.Second

// PRViewer is the external PR data source for a (repository, branch) pair
type PRViewer interface {
	ViewPR(ctx context.Context, dir, branch string) (*gh.PRView, error)
}

// Fetcher builds normalized PR snapshots for tracked repositories
type Fetcher struct {
	gh PRViewer
}

// NewFetcher creates a fetcher backed by the given PR data source
func NewFetcher(viewer PRViewer) *Fetcher {
	return &Fetcher{gh: viewer}
}

// Fetch returns one repository's PR snapshot. It never returns an error:
// every failure mode (repo missing on disk, not a checkout, branch
// undeterminable, query timeout, malformed response) is captured in the
// snapshot's Error field so one bad repository cannot abort the batch.
func (f *Fetcher) Fetch(ctx context.Context, projectDir string, repo config.Repo) model.PrInfo {
	repoPath := filepath.Join(projectDir, repo.Path)
	info := model.PrInfo{
		RepoPath: filepath.Base(repo.Path),
		RepoURL:  repo.URL,
		Branch:   repo.Branch,
	}

	if _, err := os.Stat(repoPath); err != nil {
		info.Error = "repository not found on disk"
		return info
	}

	if !git.IsRepository(repoPath) {
		info.Error = "not a git repository"
		return info
	}

	// The checkout may be on a different branch than the tracked one, or
	// detached entirely. The PR query follows what is actually checked out.
	branch, err := git.CurrentBranch(repoPath)
	if err != nil {
		info.Error = fmt.Sprintf("failed to get branch: %v", err)
		return info
	}
	info.Branch = branch

	viewCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	view, err := f.gh.ViewPR(viewCtx, repoPath, branch)
	if err != nil {
		info.Error = fmt.Sprintf("failed to query PR: %v", err)
		return info
	}
	if view == nil {
		// No PR for this branch, e.g. a branch that exists only locally
		return info
	}

	return view.ToPrInfo(info.RepoPath, repo.URL, branch)
}

// FetchAll fetches snapshots for every tracked repository, sequentially
// and in manifest order.
func (f *Fetcher) FetchAll(ctx context.Context, projectDir string, repos []config.Repo) []model.PrInfo {
	infos := make([]model.PrInfo, 0, len(repos))
	for _, repo := range repos {
		infos = append(infos, f.Fetch(ctx, projectDir, repo))
	}
	return infos
}
