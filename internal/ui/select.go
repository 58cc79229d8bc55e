package ui

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/data-yaml/qen/internal/model"
)

func init() {
	// Force lipgloss to detect the terminal before the fuzzy finder starts,
	// so ANSI escape sequences do not leak into the finder input
	_ = lipgloss.NewStyle().Render("")
	_ = lipgloss.HasDarkBackground()
}

// SelectStack presents a fuzzy finder to pick one stack from a collection.
// Returns the selected root branch, or "" if the user cancelled.
func SelectStack(stacks map[string]model.Stack) (string, error) {
	roots := make([]string, 0, len(stacks))
	for root := range stacks {
		roots = append(roots, root)
	}
	sort.Strings(roots)

	os.Stdout.Sync()
	os.Stderr.Sync()

	idx, err := fuzzyfinder.Find(
		roots,
		func(i int) string {
			s := stacks[roots[i]]
			return fmt.Sprintf("%s (%d PRs)", roots[i], s.Len())
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return RenderStackTree(stacks[roots[i]])
		}),
	)
	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		return "", nil
	}

	return roots[idx], nil
}
