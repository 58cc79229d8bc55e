package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"
)

// updateBranchRequest is the REST body for the update-branch endpoint.
// ExpectedHeadSHA is an optional precondition: when set, GitHub refuses the
// update if the PR head has moved since the caller last looked.
type updateBranchRequest struct {
	ExpectedHeadSHA string `json:"expected_head_sha,omitempty"`
}

// UpdateBranch rebases/updates a PR's branch against its current base via
// the GitHub REST API. Returns ErrAlreadyUpToDate when GitHub reports there
// is nothing to update.
func (c *Client) UpdateBranch(ctx context.Context, owner, repo string, number int, expectedHeadSHA string) error {
	client, err := api.DefaultRESTClient()
	if err != nil {
		return fmt.Errorf("failed to create GitHub API client: %w", err)
	}

	var body io.Reader
	if expectedHeadSHA != "" {
		payload, err := json.Marshal(updateBranchRequest{ExpectedHeadSHA: expectedHeadSHA})
		if err != nil {
			return fmt.Errorf("failed to marshal update-branch request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	path := fmt.Sprintf("repos/%s/%s/pulls/%d/update-branch", owner, repo, number)

	var resp struct {
		Message string `json:"message"`
	}
	if err := client.DoWithContext(ctx, http.MethodPut, path, body, &resp); err != nil {
		if isAlreadyUpToDate(err) {
			return ErrAlreadyUpToDate
		}
		return fmt.Errorf("failed to update branch for PR #%d: %w", number, err)
	}

	return nil
}

// isAlreadyUpToDate recognizes GitHub's "nothing to update" responses.
// GitHub phrases this as an HTTP 422 with a message like "There are no new
// commits on the base branch" or "already up to date".
func isAlreadyUpToDate(err error) bool {
	var httpErr *api.HTTPError
	msg := err.Error()
	if errors.As(err, &httpErr) {
		msg = httpErr.Message
	}
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "already up to date") ||
		strings.Contains(msg, "no new commits")
}
