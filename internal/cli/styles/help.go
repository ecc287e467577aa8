package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// PaletteKeyMap defines keybindings for the interactive palette.
type PaletteKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PaletteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Cancel}
}

// FullHelp returns keybindings for expanded help.
func (k PaletteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Open, k.Cancel},
	}
}

// DefaultPaletteKeyMap returns the default palette keybindings. Letters are
// left to the query input.
func DefaultPaletteKeyMap() PaletteKeyMap {
	return PaletteKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/C-p", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "tab"),
			key.WithHelp("↓/C-n", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
