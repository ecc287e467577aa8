package styles

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/flashmark/internal/domain/entity"
)

// ResultItem adapts a palette result to list.Item.
type ResultItem struct {
	Result entity.Result
}

// FilterValue implements list.Item. Filtering is done by the palette
// engine, not the list.
func (i ResultItem) FilterValue() string {
	return i.Result.Title
}

// ResultDelegate renders palette results on two lines.
type ResultDelegate struct {
	Theme *Theme
}

// Height returns the height of each item.
func (ResultDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (ResultDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (ResultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d ResultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(ResultItem)
	if !ok {
		return
	}

	t := d.Theme
	selected := index == m.Index()

	cursor := cursorEmpty
	titleStyle := t.ListItemTitle
	descStyle := t.ListItemDesc
	if selected {
		cursor = cursorSelected
		titleStyle = titleStyle.Foreground(t.Accent).Bold(true)
		descStyle = descStyle.Foreground(t.Text)
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		t.KindBadge(ri.Result.Kind),
		" ",
		titleStyle.Render(Truncate(ri.Result.Title, maxTitleWidth)),
	)
	line2 := "   " + descStyle.Render(Truncate(ri.Result.Subtitle, maxSubtitleWidth))

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewResultList creates a themed list for palette results.
func NewResultList(theme *Theme, results []entity.Result, width, height int) list.Model {
	items := make([]list.Item, len(results))
	for i, r := range results {
		items[i] = ResultItem{Result: r}
	}

	l := list.New(items, ResultDelegate{Theme: theme}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)

	return l
}
