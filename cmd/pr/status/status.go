package status

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/data-yaml/qen/internal/common"
	"github.com/data-yaml/qen/internal/gh"
	"github.com/data-yaml/qen/internal/model"
	"github.com/data-yaml/qen/internal/stack"
	"github.com/data-yaml/qen/internal/ui"
)

// Command shows PR status for every repository in the active project
type Command struct {
	GH      *gh.Client
	Fetcher *stack.Fetcher

	// Flags
	Verbose bool
}

func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show PR status for all repositories in the current project",
		Long: `Show PR status for all repositories in the current project.

Queries GitHub for the PR on each repository's checked-out branch,
including PR state, CI checks and mergeability.

Requires the GitHub CLI (gh) to be installed and authenticated.

Example:
  qen pr status
  qen pr status -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&c.Verbose, "verbose", "v", false, "Show detailed PR information")

	parent.AddCommand(cmd)
}

func (c *Command) Run(ctx context.Context) error {
	projectDir, project, err := common.LoadProject()
	if err != nil {
		return err
	}

	if !c.GH.IsInstalled(ctx) {
		return fmt.Errorf("GitHub CLI (gh) is not installed or not accessible; install it from https://cli.github.com")
	}

	ui.Header(fmt.Sprintf("PR status for project: %s", project.Name))

	infos := c.Fetcher.FetchAll(ctx, projectDir, project.Repos)

	ui.Println(ui.RenderRepoTable(infos))

	if c.Verbose {
		for _, pr := range infos {
			printDetails(pr)
		}
	}

	printSummary(infos)
	return nil
}

// printDetails prints the per-PR fields omitted from the table
func printDetails(pr model.PrInfo) {
	if !pr.HasPR {
		return
	}

	ui.Println(ui.Bold(fmt.Sprintf("%s #%d: %s", pr.RepoPath, pr.Number, pr.Title)))
	ui.Printf("  author:  %s\n", pr.Author)
	ui.Printf("  target:  %s\n", pr.BaseBranch)
	ui.Printf("  url:     %s\n", pr.URL)
	ui.Printf("  created: %s\n", pr.CreatedAt.Format("2006-01-02 15:04"))
	ui.Printf("  updated: %s\n", pr.UpdatedAt.Format("2006-01-02 15:04"))
	ui.Printf("  size:    %d commits, %d files changed\n", pr.CommitCount, pr.ChangedFileCount)
}

func printSummary(infos []model.PrInfo) {
	var withPR, errors int
	var open, merged, closed int
	var passing, failing, pending int

	for _, pr := range infos {
		if pr.Error != "" {
			errors++
		}
		if !pr.HasPR {
			continue
		}
		withPR++

		switch pr.State {
		case model.PRStateOpen:
			open++
		case model.PRStateMerged:
			merged++
		case model.PRStateClosed:
			closed++
		}

		switch {
		case pr.Checks.Is(model.ChecksPassing):
			passing++
		case pr.Checks.Is(model.ChecksFailing):
			failing++
		case pr.Checks.Is(model.ChecksPending):
			pending++
		}
	}

	ui.Println("")
	ui.Println(ui.Bold("Summary"))
	ui.Println("  " + ui.FormatRepoSummary(len(infos), withPR, errors))

	if withPR > 0 {
		if states := ui.FormatBreakdown(
			[]int{open, merged, closed},
			[]string{"open", "merged", "closed"},
		); states != "" {
			ui.Println("  PR states: " + states)
		}
		if checks := ui.FormatBreakdown(
			[]int{passing, failing, pending},
			[]string{"passing", "failing", "pending"},
		); checks != "" {
			ui.Println("  Check status: " + checks)
		}
	}
}
