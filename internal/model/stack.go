package model

// MainlineBranches are the branch names treated as a stack's ultimate
// target. A PR based on one of these is a stack root candidate; a PR based
// on anything else may be a child of another tracked PR.
var MainlineBranches = map[string]bool{
	"main":    true,
	"master":  true,
	"develop": true,
	"dev":     true,
}

// IsMainline reports whether branch is one of the fixed mainline names
func IsMainline(branch string) bool {
	return MainlineBranches[branch]
}

// Stack is an ordered chain of dependent PRs. The first entry's base is a
// mainline branch; every later entry's base is the branch of the entry
// before it. A stack always has at least two entries; a lone PR targeting
// mainline is not a stack.
//
// Stacks are a derived view, rebuilt from scratch on every invocation, and
// are keyed by the branch name of their root entry.
type Stack struct {
	RootBranch string
	PRs        []PrInfo
}

// Len returns the number of PRs in the stack
func (s Stack) Len() int {
	return len(s.PRs)
}

// Root returns the stack's root PR
func (s Stack) Root() PrInfo {
	return s.PRs[0]
}

// Summary holds aggregate counters over a stack collection
type Summary struct {
	TotalStacks int
	TotalPRs    int
	MaxDepth    int
}
