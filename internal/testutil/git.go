// Package testutil provides git repository fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// InitRepo creates a git repository with a single commit in a temp
// directory and returns its path. The default branch is master.
func InitRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	InitRepoAt(t, dir)
	return dir
}

// InitRepoAt creates a git repository with a single commit at the given
// path, creating the directory if needed.
func InitRepoAt(t *testing.T, dir string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	commitFile(t, repo, dir, "README.md", "# test fixture\n")
}

// CheckoutBranch creates and checks out a new branch in the repository
func CheckoutBranch(t *testing.T, dir, branch string) {
	t.Helper()

	repo, err := gogit.PlainOpen(dir)
	require.NoError(t, err)

	w, err := repo.Worktree()
	require.NoError(t, err)

	err = w.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: true,
	})
	require.NoError(t, err)
}

// DetachHead leaves the repository in a detached HEAD state
func DetachHead(t *testing.T, dir string) {
	t.Helper()

	repo, err := gogit.PlainOpen(dir)
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)

	w, err := repo.Worktree()
	require.NoError(t, err)

	err = w.Checkout(&gogit.CheckoutOptions{Hash: head.Hash()})
	require.NoError(t, err)
}

func commitFile(t *testing.T, repo *gogit.Repository, dir, name, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))

	w, err := repo.Worktree()
	require.NoError(t, err)

	_, err = w.Add(name)
	require.NoError(t, err)

	_, err = w.Commit("add "+name, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "test",
			Email: "test@example.com",
			When:  time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
}
