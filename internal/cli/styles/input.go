package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewSearchInput creates the palette query input.
func NewSearchInput(theme *Theme) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search tabs, bookmarks and actions..."
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = IconSearch + " "
	ti.CharLimit = 256
	return ti
}
