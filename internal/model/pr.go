package model

import "time"

// PRState is the lifecycle state of a pull request on GitHub
type PRState string

const (
	PRStateOpen   PRState = "open"
	PRStateClosed PRState = "closed"
	PRStateMerged PRState = "merged"
)

// Mergeable describes whether a PR can be merged cleanly into its base
type Mergeable string

const (
	MergeableClean       Mergeable = "mergeable"
	MergeableConflicting Mergeable = "conflicting"
	MergeableUnknown     Mergeable = "unknown"
)

// PrInfo is one repository's PR snapshot, taken at a single point in time.
// Exactly one of three shapes holds:
//   - Error != ""            : the snapshot could not be obtained (HasPR is false)
//   - HasPR == false, no err : the branch has no PR (a legitimate state)
//   - HasPR == true          : all PR fields below are populated
type PrInfo struct {
	RepoPath string // local directory name, for display
	RepoURL  string
	Branch   string // branch actually checked out, may differ from the tracked branch

	HasPR bool

	Number           int
	Title            string
	State            PRState
	BaseBranch       string
	URL              string
	Checks           *CheckStatus // nil when the PR has no checks
	Mergeable        Mergeable
	Author           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CommitCount      int
	ChangedFileCount int
	ChangedFilePaths []string

	Error string
}

// IsOpen reports whether the snapshot holds an open PR
func (p PrInfo) IsOpen() bool {
	return p.HasPR && p.State == PRStateOpen
}
