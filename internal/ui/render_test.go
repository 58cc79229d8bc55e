package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/data-yaml/qen/internal/model"
)

func stackFixture() model.Stack {
	return model.Stack{
		RootBranch: "feat-auth",
		PRs: []model.PrInfo{
			{
				RepoPath:   "backend",
				Branch:     "feat-auth",
				HasPR:      true,
				Number:     101,
				Title:      "Add auth API",
				State:      model.PRStateOpen,
				BaseBranch: "main",
				Checks:     &model.CheckStatus{State: model.ChecksPassing},
			},
			{
				RepoPath:   "frontend",
				Branch:     "feat-auth-ui",
				HasPR:      true,
				Number:     102,
				Title:      "Wire auth into UI",
				State:      model.PRStateOpen,
				BaseBranch: "feat-auth",
				Checks:     &model.CheckStatus{State: model.ChecksPending},
			},
		},
	}
}

func TestRenderStackTree(t *testing.T) {
	out := RenderStackTree(stackFixture())

	assert.Contains(t, out, "main")
	assert.Contains(t, out, "#101")
	assert.Contains(t, out, "Add auth API")
	assert.Contains(t, out, "(backend)")
	assert.Contains(t, out, "#102")
	assert.Contains(t, out, "├─")
	assert.Contains(t, out, "╰─")

	// Parent renders above child
	assert.Less(t, strings.Index(out, "#101"), strings.Index(out, "#102"))
}

func TestRenderStackCollection_Empty(t *testing.T) {
	out := RenderStackCollection(map[string]model.Stack{})
	assert.Contains(t, out, "No PR stacks found")
}

func TestRenderStackCollection_SortedByRoot(t *testing.T) {
	beta := stackFixture()
	alpha := stackFixture()
	alpha.PRs[0].Number = 201
	alpha.PRs[1].Number = 202

	out := RenderStackCollection(map[string]model.Stack{
		"zeta-root":  beta,
		"alpha-root": alpha,
	})

	assert.Less(t, strings.Index(out, "#201"), strings.Index(out, "#101"))
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(model.Summary{TotalStacks: 2, TotalPRs: 5, MaxDepth: 3})
	assert.Equal(t, "2 stacks, 5 PRs, max depth 3", out)
}

func TestRenderRepoTable(t *testing.T) {
	infos := []model.PrInfo{
		stackFixture().PRs[0],
		{RepoPath: "docs", Branch: "main"},
		{RepoPath: "broken", Branch: "main", Error: "not a git repository"},
	}

	out := RenderRepoTable(infos)

	assert.Contains(t, out, "Repo")
	assert.Contains(t, out, "Checks")
	assert.Contains(t, out, "backend")
	assert.Contains(t, out, "#101")
	assert.Contains(t, out, "no PR")
	assert.Contains(t, out, "not a git repository")
}

func TestPRStatus(t *testing.T) {
	tests := []struct {
		name string
		pr   model.PrInfo
		icon string
	}{
		{name: "error", pr: model.PrInfo{Error: "boom"}, icon: IconError},
		{name: "no PR", pr: model.PrInfo{}, icon: IconNoPR},
		{name: "open", pr: model.PrInfo{HasPR: true, State: model.PRStateOpen}, icon: IconOpen},
		{name: "merged", pr: model.PrInfo{HasPR: true, State: model.PRStateMerged}, icon: IconMerged},
		{name: "closed", pr: model.PrInfo{HasPR: true, State: model.PRStateClosed}, icon: IconClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.icon, PRStatus(tt.pr).Icon)
		})
	}
}

func TestCheckStatusDisplay(t *testing.T) {
	assert.Equal(t, "-", CheckStatus(nil).Icon)
	assert.Equal(t, IconChecksPassing, CheckStatus(&model.CheckStatus{State: model.ChecksPassing}).Icon)
	assert.Equal(t, IconChecksFailing, CheckStatus(&model.CheckStatus{State: model.ChecksFailing}).Icon)

	unknown := CheckStatus(&model.CheckStatus{State: model.ChecksUnknown, States: []string{"stale"}})
	assert.Equal(t, IconChecksUnknown, unknown.Icon)
	assert.Equal(t, "unknown (stale)", unknown.Label)
}

func TestFormatRepoSummary(t *testing.T) {
	assert.Equal(t,
		"5 repositories checked, 3 with PRs, 2 without PRs, 1 error",
		FormatRepoSummary(5, 3, 1))
	assert.Equal(t,
		"1 repository checked, 1 with PRs, 0 without PRs",
		FormatRepoSummary(1, 1, 0))
}

func TestFormatBreakdown(t *testing.T) {
	out := FormatBreakdown([]int{2, 0, 1}, []string{"open", "merged", "closed"})
	assert.Equal(t, "2 open, 1 closed", out)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a long t...", Truncate("a long title that keeps going", 11))
	assert.Equal(t, "", Truncate("anything", 0))
}
