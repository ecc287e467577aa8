// Package styles provides the lipgloss styles and bubbles components used by
// the flashmark CLI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of base colors a Theme is built from.
type Palette struct {
	Background     string
	Surface        string
	SurfaceVariant string
	Text           string
	Muted          string
	Accent         string
	Border         string
}

// DefaultPalette returns the dark palette.
func DefaultPalette() Palette {
	return Palette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#60a5fa",
		Border:         "#333333",
	}
}

// Theme holds lipgloss colors and styles.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	ListItemTitle lipgloss.Style
	ListItemDesc  lipgloss.Style

	// Kind badges, one per result source.
	TabBadge      lipgloss.Style
	BookmarkBadge lipgloss.Style
	ActionBadge   lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	Box lipgloss.Style
}

// NewTheme creates the default theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultPalette())
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),

		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color("#4ade80"),
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.ListItemTitle = lipgloss.NewStyle().
		Foreground(t.Text)

	t.ListItemDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	badge := lipgloss.NewStyle().
		Foreground(t.Background).
		Padding(0, 1).
		Width(10).
		Align(lipgloss.Center)
	t.TabBadge = badge.Background(t.Accent)
	t.BookmarkBadge = badge.Background(t.Success)
	t.ActionBadge = badge.Background(t.Warning)

	t.Input = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.InputFocused = t.Input.
		BorderForeground(t.Accent)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
}
