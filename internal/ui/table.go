package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/data-yaml/qen/internal/model"
)

// RenderRepoTable renders the per-repository PR status table shown by
// `qen pr status`.
func RenderRepoTable(infos []model.PrInfo) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(TableBorderStyle).
		StyleFunc(repoTableStyleFunc).
		Width(GetTerminalWidth()).
		Headers("Repo", "Branch", "PR", "State", "Checks", "Mergeable")

	for _, pr := range infos {
		t.Row(repoTableRow(pr)...)
	}

	return t.String()
}

func repoTableRow(pr model.PrInfo) []string {
	if pr.Error != "" {
		return []string{pr.RepoPath, pr.Branch, "-", ErrorStyle.Render(pr.Error), "-", "-"}
	}
	if !pr.HasPR {
		return []string{pr.RepoPath, pr.Branch, "-", Dim("no PR"), "-", "-"}
	}

	mergeable := string(pr.Mergeable)
	if pr.Mergeable == model.MergeableConflicting {
		mergeable = ErrorStyle.Render("conflicting")
	}

	return []string{
		pr.RepoPath,
		pr.Branch,
		fmt.Sprintf("#%d", pr.Number),
		PRStatus(pr).Render(),
		CheckStatus(pr.Checks).Render(),
		mergeable,
	}
}

func repoTableStyleFunc(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return TableHeaderStyle
	}
	return TableCellStyle
}
