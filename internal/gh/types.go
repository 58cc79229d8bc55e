package gh

import (
	"strings"
	"time"

	"github.com/data-yaml/qen/internal/model"
)

// CheckRun is one raw check observation from a PR's status check rollup.
// Status is always present; Conclusion only when Status is COMPLETED.
type CheckRun struct {
	Typename     string    `json:"__typename"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	Conclusion   string    `json:"conclusion"`
	DetailsURL   string    `json:"detailsUrl"`
	StartedAt    time.Time `json:"startedAt"`
	CompletedAt  time.Time `json:"completedAt"`
	WorkflowName string    `json:"workflowName"`
}

// PRView mirrors the fields requested from `gh pr view --json`.
// Optional fields may be absent or null; parsing must not fail on them.
type PRView struct {
	Number            int        `json:"number"`
	Title             string     `json:"title"`
	State             string     `json:"state"`
	BaseRefName       string     `json:"baseRefName"`
	URL               string     `json:"url"`
	StatusCheckRollup []CheckRun `json:"statusCheckRollup"`
	Mergeable         string     `json:"mergeable"`
	Author            struct {
		Login string `json:"login"`
	} `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Commits   []struct {
		OID string `json:"oid"`
	} `json:"commits"`
	Files []struct {
		Path string `json:"path"`
	} `json:"files"`
}

// ToPrInfo normalizes raw gh output into a PR snapshot for the given
// repository. Absent upstream fields degrade to zero values rather than
// failing the snapshot.
func (p *PRView) ToPrInfo(repoPath, repoURL, branch string) model.PrInfo {
	info := model.PrInfo{
		RepoPath:         repoPath,
		RepoURL:          repoURL,
		Branch:           branch,
		HasPR:            true,
		Number:           p.Number,
		Title:            p.Title,
		State:            normalizeState(p.State),
		BaseBranch:       p.BaseRefName,
		URL:              p.URL,
		Checks:           ClassifyChecks(p.StatusCheckRollup),
		Mergeable:        normalizeMergeable(p.Mergeable),
		Author:           p.Author.Login,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
		CommitCount:      len(p.Commits),
		ChangedFileCount: len(p.Files),
	}

	for _, f := range p.Files {
		info.ChangedFilePaths = append(info.ChangedFilePaths, f.Path)
	}

	return info
}

// normalizeState converts GitHub's OPEN/CLOSED/MERGED to our lowercase form
func normalizeState(state string) model.PRState {
	switch strings.ToLower(state) {
	case "open":
		return model.PRStateOpen
	case "closed":
		return model.PRStateClosed
	case "merged":
		return model.PRStateMerged
	default:
		return model.PRState(strings.ToLower(state))
	}
}

// normalizeMergeable converts GitHub's MERGEABLE/CONFLICTING/UNKNOWN values
func normalizeMergeable(mergeable string) model.Mergeable {
	switch strings.ToLower(mergeable) {
	case "mergeable":
		return model.MergeableClean
	case "conflicting":
		return model.MergeableConflicting
	default:
		return model.MergeableUnknown
	}
}
