package ui

import (
	"bufio"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Truncate truncates text to maxLen with an ellipsis, ANSI-aware
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return lipgloss.NewStyle().MaxWidth(maxLen).Render(text)
	}
	return lipgloss.NewStyle().MaxWidth(maxLen-3).Render(text) + "..."
}

// Confirm prompts the user with a yes/no question and returns true only
// for an explicit "y" or "yes" answer.
func Confirm(prompt string) bool {
	os.Stdout.WriteString(prompt + " [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(input))
	return answer == "y" || answer == "yes"
}
