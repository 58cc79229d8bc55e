package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/data-yaml/qen/internal/model"
)

func pr(branch, base string, number int) model.PrInfo {
	return model.PrInfo{
		RepoPath:   branch + "-repo",
		RepoURL:    "git@github.com:acme/" + branch + "-repo.git",
		Branch:     branch,
		HasPR:      true,
		Number:     number,
		Title:      "change on " + branch,
		State:      model.PRStateOpen,
		BaseBranch: base,
	}
}

func branches(s model.Stack) []string {
	out := make([]string, 0, s.Len())
	for _, p := range s.PRs {
		out = append(out, p.Branch)
	}
	return out
}

func TestBuildStacks_LinearChain(t *testing.T) {
	snapshots := []model.PrInfo{
		pr("feat-a", "main", 1),
		pr("feat-b", "feat-a", 2),
		pr("feat-c", "feat-b", 3),
	}

	stacks := BuildStacks(snapshots)

	require.Len(t, stacks, 1)
	s, ok := stacks["feat-a"]
	require.True(t, ok)
	assert.Equal(t, []string{"feat-a", "feat-b", "feat-c"}, branches(s))

	summary := Summarize(stacks)
	assert.Equal(t, 1, summary.TotalStacks)
	assert.Equal(t, 3, summary.TotalPRs)
	assert.Equal(t, 3, summary.MaxDepth)
}

func TestBuildStacks_ParentBeforeChildInvariant(t *testing.T) {
	snapshots := []model.PrInfo{
		pr("root", "main", 1),
		pr("mid", "root", 2),
		pr("leaf-1", "mid", 3),
		pr("leaf-2", "mid", 4),
	}

	stacks := BuildStacks(snapshots)
	require.Len(t, stacks, 1)

	s := stacks["root"]
	assert.True(t, model.IsMainline(s.Root().BaseBranch))

	// Every non-root entry's base must be the branch of an earlier entry
	seen := map[string]bool{s.Root().Branch: true}
	for _, entry := range s.PRs[1:] {
		assert.True(t, seen[entry.BaseBranch], "entry %s appears before its parent %s", entry.Branch, entry.BaseBranch)
		seen[entry.Branch] = true
	}
}

func TestBuildStacks_ChildSubtreeFollowsImmediately(t *testing.T) {
	// Depth-first: mid-1's own child comes before the sibling mid-2
	snapshots := []model.PrInfo{
		pr("root", "main", 1),
		pr("mid-1", "root", 2),
		pr("mid-2", "root", 3),
		pr("deep", "mid-1", 4),
	}

	stacks := BuildStacks(snapshots)
	require.Len(t, stacks, 1)
	assert.Equal(t, []string{"root", "mid-1", "deep", "mid-2"}, branches(stacks["root"]))
}

func TestBuildStacks_LonePRIsNotAStack(t *testing.T) {
	snapshots := []model.PrInfo{
		pr("solo", "main", 1),
		pr("other", "develop", 2),
	}

	stacks := BuildStacks(snapshots)
	assert.Empty(t, stacks)
}

func TestBuildStacks_MultipleIndependentStacks(t *testing.T) {
	snapshots := []model.PrInfo{
		pr("auth", "main", 1),
		pr("auth-ui", "auth", 2),
		pr("db", "develop", 3),
		pr("db-migrations", "db", 4),
		pr("solo", "master", 5),
	}

	stacks := BuildStacks(snapshots)
	require.Len(t, stacks, 2)
	assert.Equal(t, []string{"auth", "auth-ui"}, branches(stacks["auth"]))
	assert.Equal(t, []string{"db", "db-migrations"}, branches(stacks["db"]))
}

func TestBuildStacks_IgnoresSnapshotsWithoutPRs(t *testing.T) {
	snapshots := []model.PrInfo{
		pr("feat-a", "main", 1),
		pr("feat-b", "feat-a", 2),
		{RepoPath: "broken-repo", Branch: "feat-x", Error: "not a git repository"},
		{RepoPath: "quiet-repo", Branch: "local-only"},
	}

	stacks := BuildStacks(snapshots)
	require.Len(t, stacks, 1)
	assert.Equal(t, []string{"feat-a", "feat-b"}, branches(stacks["feat-a"]))
}

func TestBuildStacks_UntrackedBaseIsNotAChild(t *testing.T) {
	// feat-b is based on a branch no tracked PR owns, so it joins nothing
	snapshots := []model.PrInfo{
		pr("feat-a", "main", 1),
		pr("feat-b", "someone-elses-branch", 2),
	}

	stacks := BuildStacks(snapshots)
	assert.Empty(t, stacks)
}

func TestBuildStacks_CycleDoesNotRecurseForever(t *testing.T) {
	// A malformed two-node cycle with neither targeting mainline must not
	// produce a stack or hang.
	snapshots := []model.PrInfo{
		pr("cycle-a", "cycle-b", 1),
		pr("cycle-b", "cycle-a", 2),
	}

	stacks := BuildStacks(snapshots)
	assert.Empty(t, stacks)
}

func TestBuildStacks_SelfReferenceIsDefused(t *testing.T) {
	snapshots := []model.PrInfo{
		pr("root", "main", 1),
		pr("weird", "weird", 2),
		pr("child", "root", 3),
	}

	stacks := BuildStacks(snapshots)
	require.Len(t, stacks, 1)
	assert.Equal(t, []string{"root", "child"}, branches(stacks["root"]))
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(map[string]model.Stack{})
	assert.Zero(t, summary.TotalStacks)
	assert.Zero(t, summary.TotalPRs)
	assert.Zero(t, summary.MaxDepth)
}
