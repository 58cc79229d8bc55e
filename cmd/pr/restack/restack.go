package restack

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/data-yaml/qen/internal/common"
	"github.com/data-yaml/qen/internal/gh"
	"github.com/data-yaml/qen/internal/model"
	"github.com/data-yaml/qen/internal/stack"
	"github.com/data-yaml/qen/internal/ui"
)

// Command restacks every discovered PR stack, parent before child
type Command struct {
	GH      *gh.Client
	Fetcher *stack.Fetcher

	// Flags
	DryRun bool
	Pick   bool
	Yes    bool
}

func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "restack",
		Short: "Update every PR of each stack against its base, in order",
		Long: `Update every PR of each stack against its base branch.

PRs are updated strictly parent before child, so each child rebases onto
a base that has already been brought up to date. A failing PR does not
stop its stack-mates or other stacks from being attempted.

Examples:
  # Restack all discovered stacks
  qen pr restack

  # See what would be updated without touching anything
  qen pr restack --dry-run

  # Pick a single stack interactively
  qen pr restack --pick`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&c.DryRun, "dry-run", false, "Report what would be updated without mutating anything")
	cmd.Flags().BoolVar(&c.Pick, "pick", false, "Interactively pick a single stack to restack")
	cmd.Flags().BoolVarP(&c.Yes, "yes", "y", false, "Skip the confirmation prompt")

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

	ui.Info("Fetching PR snapshots...")
	infos := c.Fetcher.FetchAll(ctx, projectDir, project.Repos)
	stacks := stack.BuildStacks(infos)

	if len(stacks) == 0 {
		ui.Info("No PR stacks found; nothing to restack.")
		return nil
	}

	if c.Pick {
		root, err := ui.SelectStack(stacks)
		if err != nil {
			return err
		}
		if root == "" {
			return nil
		}
		stacks = map[string]model.Stack{root: stacks[root]}
	}

	summary := stack.Summarize(stacks)
	ui.Println(ui.RenderStackCollection(stacks))

	if !c.DryRun && !c.Yes {
		prompt := fmt.Sprintf("Restack %d PRs across %d stacks?", summary.TotalPRs, summary.TotalStacks)
		if !ui.Confirm(prompt) {
			ui.Info("Aborted.")
			return nil
		}
	}

	restacker := stack.NewRestacker(c.GH, c.DryRun)
	results := restacker.Restack(ctx, stacks)

	return c.report(results)
}

// report prints per-stack outcomes and returns an error when any PR failed,
// so the exit code reflects partial failure.
func (c *Command) report(results map[string][]model.RestackOutcome) error {
	roots := make([]string, 0, len(results))
	for root := range results {
		roots = append(roots, root)
	}
	sort.Strings(roots)

	var updated, failed int
	for _, root := range roots {
		ui.Header(fmt.Sprintf("stack %s", root))
		for _, outcome := range results[root] {
			label := fmt.Sprintf("#%d %s (%s)", outcome.PR.Number, outcome.PR.Branch, outcome.PR.RepoPath)
			switch {
			case outcome.Updated && c.DryRun:
				updated++
				ui.Successf("%s would be updated", label)
			case outcome.Updated:
				updated++
				ui.Successf("%s updated", label)
			default:
				failed++
				ui.Errorf("%s failed: %s", label, outcome.Reason)
			}
		}
	}

	ui.Println("")
	ui.Printf("%d updated, %d failed across %d PRs\n", updated, failed, updated+failed)

	if failed > 0 {
		return fmt.Errorf("%d PRs failed to restack", failed)
	}
	return nil
}
