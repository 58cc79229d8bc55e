package gh

import (
	"sort"
	"strings"

	"github.com/data-yaml/qen/internal/model"
)

// Effective check states that count as a failure. Failures dominate every
// other state: a known-broken PR must never read as "still running".
var failureStates = map[string]bool{
	"failure":         true,
	"timed-out":       true,
	"action-required": true,
}

// Effective check states that count as still running. Pending dominates a
// stale passing read from before the newest run started.
var pendingStates = map[string]bool{
	"pending":     true,
	"in-progress": true,
	"queued":      true,
	"waiting":     true,
}

// Effective check states that never block an otherwise-green rollup
var neutralStates = map[string]bool{
	"skipped":   true,
	"neutral":   true,
	"cancelled": true,
	"stale":     true,
}

// ClassifyChecks maps a PR's raw check rollup to one aggregate status.
// An empty rollup returns nil: "no checks" is represented by an unset
// Checks field, not by a distinct state.
func ClassifyChecks(runs []CheckRun) *model.CheckStatus {
	if len(runs) == 0 {
		return nil
	}

	var hasFailure, hasPending, allSuccess bool
	allSuccess = true
	seen := map[string]bool{}
	var active []string

	for _, run := range runs {
		state := effectiveState(run)
		if !seen[state] {
			seen[state] = true
		}
		if failureStates[state] {
			hasFailure = true
		}
		if pendingStates[state] {
			hasPending = true
		}
		if !neutralStates[state] {
			active = append(active, state)
			if state != "success" {
				allSuccess = false
			}
		}
	}

	switch {
	case hasFailure:
		return &model.CheckStatus{State: model.ChecksFailing}
	case hasPending:
		return &model.CheckStatus{State: model.ChecksPending}
	case len(active) > 0 && allSuccess:
		return &model.CheckStatus{State: model.ChecksPassing}
	case len(active) == 0:
		return &model.CheckStatus{State: model.ChecksSkipped}
	default:
		// Unrecognized combination: surface the raw states for diagnosis
		// instead of guessing.
		states := make([]string, 0, len(seen))
		for state := range seen {
			states = append(states, state)
		}
		sort.Strings(states)
		return &model.CheckStatus{State: model.ChecksUnknown, States: states}
	}
}

// effectiveState reduces a raw observation to a single state name: the
// conclusion once a check has completed, its status otherwise. GitHub
// reports these in SCREAMING_SNAKE_CASE; we normalize to lowercase with
// hyphens (IN_PROGRESS becomes in-progress).
func effectiveState(run CheckRun) string {
	status := normalizeCheckWord(run.Status)
	if status != "completed" {
		return status
	}
	return normalizeCheckWord(run.Conclusion)
}

func normalizeCheckWord(word string) string {
	return strings.ReplaceAll(strings.ToLower(word), "_", "-")
}
