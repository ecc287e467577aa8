package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/domain/tabops"
)

const (
	maxTitleWidth    = 60
	maxSubtitleWidth = 70
)

// KindBadge renders the source of a result.
func (t *Theme) KindBadge(kind entity.ResultKind) string {
	switch kind {
	case entity.ResultKindTab:
		return t.TabBadge.Render(IconTab + " tab")
	case entity.ResultKindBookmark:
		return t.BookmarkBadge.Render(IconBookmark + " mark")
	default:
		return t.ActionBadge.Render(IconBolt + " action")
	}
}

// Truncate shortens s to at most limit runes, marking the cut with "...".
func Truncate(s string, limit int) string {
	const ellipsis = "..."
	r := []rune(s)
	if limit <= len(ellipsis) || len(r) <= limit {
		return s
	}
	return string(r[:limit-len(ellipsis)]) + ellipsis
}

// ResultRenderer prints palette output for non-interactive commands.
type ResultRenderer struct {
	theme *Theme
}

// NewResultRenderer creates a renderer with the given theme.
func NewResultRenderer(theme *Theme) *ResultRenderer {
	return &ResultRenderer{theme: theme}
}

// RenderResults renders one line per result.
func (r *ResultRenderer) RenderResults(results []entity.Result) string {
	if len(results) == 0 {
		return r.theme.Subtle.Render("No results")
	}

	lines := make([]string, 0, len(results))
	for _, res := range results {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Left,
			r.theme.KindBadge(res.Kind),
			" ",
			r.theme.ListItemTitle.Render(Truncate(res.Title, maxTitleWidth)),
			"  ",
			r.theme.ListItemDesc.Render(Truncate(res.Subtitle, maxSubtitleWidth)),
		))
	}
	return strings.Join(lines, "\n")
}

// RenderCleanupPlan summarizes which tabs cleanup would close.
func (r *ResultRenderer) RenderCleanupPlan(plan tabops.CleanupPlan, tabs []entity.Tab) string {
	byID := make(map[entity.TabID]entity.Tab, len(tabs))
	for _, tab := range tabs {
		byID[tab.ID] = tab
	}

	var b strings.Builder
	b.WriteString(r.theme.Title.Render(fmt.Sprintf("%s Cleanup would close %d tab(s), keeping %d host(s)",
		IconTrash, len(plan.Close), plan.Kept)))
	for _, id := range plan.Close {
		tab := byID[id]
		b.WriteString("\n  ")
		b.WriteString(r.theme.ErrorStyle.Render(IconX))
		b.WriteString(" ")
		b.WriteString(r.theme.ListItemTitle.Render(Truncate(tab.DisplayTitle(), maxTitleWidth)))
		b.WriteString("  ")
		b.WriteString(r.theme.ListItemDesc.Render(Truncate(tab.URL, maxSubtitleWidth)))
	}
	for _, id := range plan.KeptTabs {
		tab := byID[id]
		b.WriteString("\n  ")
		b.WriteString(r.theme.SuccessStyle.Render(IconCheck))
		b.WriteString(" ")
		b.WriteString(r.theme.ListItemTitle.Render(Truncate(tab.DisplayTitle(), maxTitleWidth)))
	}
	return b.String()
}

// RenderSettings renders the effective settings and the engine catalog.
func (r *ResultRenderer) RenderSettings(settings entity.Settings, engines []entity.SearchEngine) string {
	lines := []string{
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("search engine:"), r.theme.Highlight.Render(settings.SearchEngine)),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("reset url:    "), r.theme.Highlight.Render(settings.ResetURL)),
		"",
		r.theme.Title.Render("Engines"),
	}
	for _, e := range engines {
		marker := "  "
		if e.ID == settings.SearchEngine {
			marker = r.theme.SuccessStyle.Render(IconCheck) + " "
		}
		lines = append(lines, fmt.Sprintf("  %s%-10s %s", marker, e.ID, r.theme.Subtle.Render(e.Name)))
	}
	return strings.Join(lines, "\n")
}

// RenderError renders an error line.
func (r *ResultRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render(IconX + " " + err.Error())
}
