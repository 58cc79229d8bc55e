package stacks

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/data-yaml/qen/internal/common"
	"github.com/data-yaml/qen/internal/gh"
	"github.com/data-yaml/qen/internal/stack"
	"github.com/data-yaml/qen/internal/ui"
)

// Command lists the PR stacks discovered across the project's repositories
type Command struct {
	GH      *gh.Client
	Fetcher *stack.Fetcher
}

func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stacks",
		Short: "Show the PR stacks discovered across the project",
		Long: `Show the PR stacks discovered across the project.

A stack is a chain of PRs where each PR's base branch is the branch of
another tracked PR, bottoming out at a mainline branch (main, master,
develop or dev). Lone PRs targeting mainline are not stacks.

Example:
  qen pr stacks`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context())
		},
	}

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

	infos := c.Fetcher.FetchAll(ctx, projectDir, project.Repos)
	stacks := stack.BuildStacks(infos)

	ui.Println(ui.RenderStackCollection(stacks))

	if len(stacks) > 0 {
		ui.Println(ui.Dim(ui.RenderSummary(stack.Summarize(stacks))))
	}

	return nil
}
