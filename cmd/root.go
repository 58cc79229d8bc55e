package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/data-yaml/qen/cmd/pr"
	"github.com/data-yaml/qen/cmd/sh"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qen",
	Short: "Multi-repository project and PR stack manager",
	Long: `Qen tracks a logical project spread across multiple git repositories.

It queries the PRs open in each tracked repository, reconstructs the
stacks of dependent PRs implied by their base branches, and can restack
every PR of a stack in parent-before-child order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		log.Fatal(err)
	}
}

func init() {
	// Register all commands
	commands := []Command{
		&pr.Command{},
		&sh.Command{},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}
