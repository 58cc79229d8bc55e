package pr

import (
	"github.com/spf13/cobra"

	"github.com/data-yaml/qen/cmd/pr/restack"
	"github.com/data-yaml/qen/cmd/pr/stacks"
	"github.com/data-yaml/qen/cmd/pr/status"
	"github.com/data-yaml/qen/internal/gh"
	"github.com/data-yaml/qen/internal/stack"
)

// Command is the parent command for all pr subcommands
type Command struct {
	// Clients (shared by subcommands)
	GH      *gh.Client
	Fetcher *stack.Fetcher
}

// Register registers the pr command and all subcommands
func (c *Command) Register(parent *cobra.Command) {
	c.GH = gh.NewClient()
	c.Fetcher = stack.NewFetcher(c.GH)

	cmd := &cobra.Command{
		Use:   "pr",
		Short: "PR operations across the project's repositories",
		Long:  `Commands for querying and restacking pull requests in every tracked repository.`,
	}

	statusCmd := &status.Command{GH: c.GH, Fetcher: c.Fetcher}
	statusCmd.Register(cmd)

	stacksCmd := &stacks.Command{GH: c.GH, Fetcher: c.Fetcher}
	stacksCmd.Register(cmd)

	restackCmd := &restack.Command{GH: c.GH, Fetcher: c.Fetcher}
	restackCmd.Register(cmd)

	parent.AddCommand(cmd)
}
