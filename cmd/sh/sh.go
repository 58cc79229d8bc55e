package sh

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/data-yaml/qen/internal/common"
	"github.com/data-yaml/qen/internal/ui"
)

// Command runs a shell command in every tracked repository, sequentially
type Command struct{}

func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sh <command> [args...]",
		Short: "Run a command in every tracked repository",
		Long: `Run a command in every tracked repository, one after another.

A failing command in one repository does not stop the others; each
repository's exit status is reported at the end.

Examples:
  qen sh git status
  qen sh -- git log --oneline -5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context(), args)
		},
	}

	// Everything after the command name belongs to the command being run
	cmd.Flags().SetInterspersed(false)

	parent.AddCommand(cmd)
}

func (c *Command) Run(ctx context.Context, args []string) error {
	projectDir, project, err := common.LoadProject()
	if err != nil {
		return err
	}

	var failures int
	for _, repo := range project.Repos {
		repoPath := filepath.Join(projectDir, repo.Path)
		ui.Header(filepath.Base(repo.Path))

		if _, err := os.Stat(repoPath); err != nil {
			ui.Errorf("repository not found on disk: %s", repoPath)
			failures++
			continue
		}

		run := exec.CommandContext(ctx, args[0], args[1:]...)
		run.Dir = repoPath
		run.Stdout = os.Stdout
		run.Stderr = os.Stderr
		run.Stdin = os.Stdin

		if err := run.Run(); err != nil {
			ui.Errorf("command failed in %s: %v", filepath.Base(repo.Path), err)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("command failed in %d of %d repositories", failures, len(project.Repos))
	}
	return nil
}
