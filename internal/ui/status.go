package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/data-yaml/qen/internal/model"
)

// PR state icons
const (
	IconOpen   = "●"
	IconMerged = "◆"
	IconClosed = "○"
	IconNoPR   = "◯"
	IconError  = "✗"
)

// Check status icons
const (
	IconChecksPassing = "✓"
	IconChecksFailing = "✗"
	IconChecksPending = "⏳"
	IconChecksSkipped = "⊘"
	IconChecksUnknown = "?"
)

// Status pairs an icon with a label and a render style
type Status struct {
	Icon  string
	Label string
	Style lipgloss.Style
}

// Render returns the styled icon and label (e.g. "● open")
func (s Status) Render() string {
	return s.Style.Render(s.Icon + " " + s.Label)
}

// RenderCompact returns just the styled icon
func (s Status) RenderCompact() string {
	return s.Style.Render(s.Icon)
}

// PRStatus returns the display status for a PR snapshot
func PRStatus(pr model.PrInfo) Status {
	if pr.Error != "" {
		return Status{Icon: IconError, Label: "error", Style: ErrorStyle}
	}
	if !pr.HasPR {
		return Status{Icon: IconNoPR, Label: "no PR", Style: StateNoPRStyle}
	}
	switch pr.State {
	case model.PRStateOpen:
		return Status{Icon: IconOpen, Label: "open", Style: StateOpenStyle}
	case model.PRStateMerged:
		return Status{Icon: IconMerged, Label: "merged", Style: StateMergedStyle}
	case model.PRStateClosed:
		return Status{Icon: IconClosed, Label: "closed", Style: StateClosedStyle}
	default:
		return Status{Icon: IconNoPR, Label: string(pr.State), Style: StateNoPRStyle}
	}
}

// CheckStatus returns the display status for a check classification.
// A nil classification (PR has no checks) renders as a dimmed dash.
func CheckStatus(checks *model.CheckStatus) Status {
	if checks == nil {
		return Status{Icon: "-", Label: "no checks", Style: DimStyle}
	}
	switch checks.State {
	case model.ChecksPassing:
		return Status{Icon: IconChecksPassing, Label: "passing", Style: SuccessStyle}
	case model.ChecksFailing:
		return Status{Icon: IconChecksFailing, Label: "failing", Style: ErrorStyle}
	case model.ChecksPending:
		return Status{Icon: IconChecksPending, Label: "pending", Style: WarningStyle}
	case model.ChecksSkipped:
		return Status{Icon: IconChecksSkipped, Label: "skipped", Style: StateClosedStyle}
	default:
		return Status{Icon: IconChecksUnknown, Label: checks.String(), Style: StateNoPRStyle}
	}
}

// FormatRepoSummary formats the per-repo counters shown after `pr status`
// e.g. "5 repositories checked, 3 with PRs, 2 without PRs, 1 error"
func FormatRepoSummary(total, withPR, errors int) string {
	noun := "repositories"
	if total == 1 {
		noun = "repository"
	}
	parts := []string{
		fmt.Sprintf("%d %s checked", total, noun),
		fmt.Sprintf("%d with PRs", withPR),
		fmt.Sprintf("%d without PRs", total-withPR),
	}
	if errors > 0 {
		noun := "errors"
		if errors == 1 {
			noun = "error"
		}
		parts = append(parts, fmt.Sprintf("%d %s", errors, noun))
	}
	return strings.Join(parts, ", ")
}

// FormatBreakdown formats non-zero labeled counts, e.g. "2 open, 1 merged"
func FormatBreakdown(counts []int, labels []string) string {
	var parts []string
	for i, count := range counts {
		if count > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", count, labels[i]))
		}
	}
	return strings.Join(parts, ", ")
}
