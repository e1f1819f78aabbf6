package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 3)

	sectionRule = strings.Repeat("=", 80)
)

// banner renders the boxed header each demo command prints before it runs.
func banner(lines ...string) string {
	return bannerStyle.Render(strings.Join(lines, "\n"))
}

// sectionHeader renders the ruled section title used between demo stages.
func sectionHeader(title string) string {
	return "\n" + sectionRule + "\n  " + title + "\n" + sectionRule + "\n"
}
