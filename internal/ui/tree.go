package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/data-yaml/qen/internal/model"
)

// RenderStackTree renders one stack as a tree rooted at its mainline
// target. Example output:
//
//	main
//	├─● #101 Add auth API ✓ (backend)
//	├─● #102 Wire auth into UI ⏳ (frontend)
//	╰─● #103 Auth docs ✗ (docs)
func RenderStackTree(s model.Stack) string {
	t := tree.Root(TreeRootStyle.Render(s.Root().BaseBranch))

	for _, pr := range s.PRs {
		t.Child(formatStackEntry(pr))
	}

	t.Enumerator(roundedEnumerator).
		EnumeratorStyle(TreeEnumeratorStyle).
		Indenter(treeIndenter)

	return t.String()
}

// RenderStackCollection renders every stack (sorted by root branch) plus
// the aggregate summary line.
func RenderStackCollection(stacks map[string]model.Stack) string {
	if len(stacks) == 0 {
		return Dim("No PR stacks found. Stacks need at least two dependent PRs.")
	}

	roots := make([]string, 0, len(stacks))
	for root := range stacks {
		roots = append(roots, root)
	}
	sort.Strings(roots)

	var out strings.Builder
	for i, root := range roots {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(RenderStackTree(stacks[root]))
		out.WriteString("\n")
	}

	return out.String()
}

// RenderSummary formats the aggregate counters over a stack collection
func RenderSummary(summary model.Summary) string {
	return fmt.Sprintf("%d stacks, %d PRs, max depth %d",
		summary.TotalStacks, summary.TotalPRs, summary.MaxDepth)
}

// formatStackEntry formats one PR line within a stack tree
func formatStackEntry(pr model.PrInfo) string {
	status := PRStatus(pr)
	checks := CheckStatus(pr.Checks)

	return fmt.Sprintf("%s %s %s %s %s",
		status.RenderCompact(),
		Highlight(fmt.Sprintf("#%d", pr.Number)),
		Truncate(pr.Title, 50),
		checks.RenderCompact(),
		Dim(fmt.Sprintf("(%s)", pr.RepoPath)),
	)
}

// roundedEnumerator draws rounded connectors, matching the stack tree look
func roundedEnumerator(children tree.Children, i int) string {
	if children.Length() == 0 {
		return ""
	}
	if i == children.Length()-1 {
		return "╰─ "
	}
	return "├─ "
}

func treeIndenter(children tree.Children, i int) string {
	if children.Length() == 0 {
		return ""
	}
	if i == children.Length()-1 {
		return "   "
	}
	return "│  "
}
