package gh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
)

// prViewFields is the field list requested from gh for PR snapshots
const prViewFields = "number,title,state,baseRefName,url,statusCheckRollup,mergeable,author,createdAt,updatedAt,commits,files"

// Client provides GitHub operations via the gh CLI and GitHub REST API
type Client struct{}

// NewClient creates a new GitHub client
func NewClient() *Client {
	return &Client{}
}

// IsInstalled checks that the gh CLI is installed and accessible
func (c *Client) IsInstalled(ctx context.Context) bool {
	return exec.CommandContext(ctx, "gh", "--version").Run() == nil
}

// ViewPR queries the PR associated with branch in the repository at dir.
// Returns (nil, nil) when no PR exists for the branch: gh exits non-zero
// in that case and it is a legitimate, non-exceptional state. A cancelled
// or expired context is returned as an error so callers can distinguish a
// timeout from a missing PR.
func (c *Client) ViewPR(ctx context.Context, dir, branch string) (*PRView, error) {
	cmd := exec.CommandContext(ctx, "gh", "pr", "view", branch, "--json", prViewFields)
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("gh pr view timed out: %w", ctx.Err())
		}
		// No PR found for this branch
		return nil, nil
	}

	var view PRView
	if err := json.Unmarshal(output, &view); err != nil {
		return nil, fmt.Errorf("failed to parse PR JSON: %w", err)
	}

	return &view, nil
}

// ErrAlreadyUpToDate indicates an update-branch call found nothing to do.
// Callers treat it as success: restacking is idempotent.
var ErrAlreadyUpToDate = errors.New("branch already up to date with base")
