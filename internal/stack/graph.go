package stack

import "github.com/data-yaml/qen/internal/model"

// BuildStacks reconstructs PR stacks from a flat list of snapshots.
//
// A PR is a child of another tracked PR when its base branch is that PR's
// branch (and not a mainline name). Roots are PRs that target mainline and
// have at least one discovered child; their descendants are collected
// depth-first so a child's own children follow it immediately, preserving
// the parent-before-child order the restacker depends on. A PR targeting
// mainline with no children is not a stack.
//
// The result is keyed by root branch. Sibling order follows the input
// order of the snapshots.
func BuildStacks(snapshots []model.PrInfo) map[string]model.Stack {
	branchToPR := make(map[string]model.PrInfo)
	for _, pr := range snapshots {
		if pr.HasPR {
			branchToPR[pr.Branch] = pr
		}
	}

	// childrenOf is built by scanning the snapshot slice, not the branch
	// map, so sibling order is stable across runs.
	childrenOf := make(map[string][]string)
	for _, pr := range snapshots {
		if !pr.HasPR || model.IsMainline(pr.BaseBranch) {
			continue
		}
		if _, tracked := branchToPR[pr.BaseBranch]; !tracked {
			continue
		}
		childrenOf[pr.BaseBranch] = append(childrenOf[pr.BaseBranch], pr.Branch)
	}

	stacks := make(map[string]model.Stack)
	for _, pr := range snapshots {
		if !pr.HasPR || !model.IsMainline(pr.BaseBranch) {
			continue
		}
		if len(childrenOf[pr.Branch]) == 0 {
			continue
		}
		stacks[pr.Branch] = model.Stack{
			RootBranch: pr.Branch,
			PRs:        collectStack(pr, branchToPR, childrenOf),
		}
	}

	return stacks
}

// collectStack walks the adjacency map depth-first with an explicit
// work-list. The visited set guards against malformed cycles (A based on B,
// B based on A, neither targeting mainline): an already-visited branch is
// never re-descended into.
func collectStack(root model.PrInfo, branchToPR map[string]model.PrInfo, childrenOf map[string][]string) []model.PrInfo {
	prs := []model.PrInfo{root}
	visited := map[string]bool{root.Branch: true}

	worklist := []string{}
	worklist = pushChildren(worklist, childrenOf[root.Branch])

	for len(worklist) > 0 {
		branch := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if visited[branch] {
			continue
		}
		visited[branch] = true

		prs = append(prs, branchToPR[branch])
		worklist = pushChildren(worklist, childrenOf[branch])
	}

	return prs
}

// pushChildren appends children in reverse so the work-list (a LIFO) pops
// them in their original sibling order.
func pushChildren(worklist []string, children []string) []string {
	for i := len(children) - 1; i >= 0; i-- {
		worklist = append(worklist, children[i])
	}
	return worklist
}

// Summarize computes aggregate counters over a stack collection
func Summarize(stacks map[string]model.Stack) model.Summary {
	summary := model.Summary{TotalStacks: len(stacks)}
	for _, s := range stacks {
		summary.TotalPRs += s.Len()
		if s.Len() > summary.MaxDepth {
			summary.MaxDepth = s.Len()
		}
	}
	return summary
}
