package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/flashmark/internal/domain/build"
)

// AboutRenderer renders build info next to a small logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info.
func (r *AboutRenderer) Render(info build.Info) string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)
	logo := logoStyle.MarginTop(1).MarginLeft(2).Render(`  ▄██
 ▄██
█████▀
  ██▀
 █▀`)

	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	line := func(icon, key, val string) string {
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(key), valStyle.Render(val))
	}

	lines := strings.Join([]string{
		line(IconVersion, "Version", info.Version),
		line(IconGitBranch, "Commit", info.Commit),
		line(IconCalendar, "Built", info.BuildDate),
		line(IconGo, "Go", info.GoVersion),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
	}, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", lines)
}
