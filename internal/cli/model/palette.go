// Package model holds the Bubble Tea models of the interactive commands.
package model

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/flashmark/internal/application/usecase"
	"github.com/bnema/flashmark/internal/cli/styles"
	"github.com/bnema/flashmark/internal/domain/entity"
	"github.com/bnema/flashmark/internal/infrastructure/debounce"
)

// Searcher answers palette queries.
type Searcher interface {
	Search(ctx context.Context, input usecase.SearchInput) (*usecase.SearchOutput, error)
}

// Resolver turns free text into a URL or a search URL.
type Resolver interface {
	Resolve(ctx context.Context, query string) (target string, isURL bool, err error)
}

// Selection is what the user picked when the palette closed.
type Selection struct {
	// Target is the URL to open, or "action:<id>" for actions without one.
	Target string
	// Result is nil when Target came from the navigate-or-search fallback.
	Result *entity.Result
}

// ActionTargetPrefix marks a selection that names an action.
const ActionTargetPrefix = "action:"

// PaletteModel is the interactive palette. Typing submits the query to a
// debounce scheduler, so only the last query of a burst is evaluated.
type PaletteModel struct {
	input textinput.Model
	list  list.Model
	help  help.Model
	keys  styles.PaletteKeyMap
	theme *styles.Theme

	ctx      context.Context
	search   *debounce.Scheduler[*usecase.SearchOutput]
	resolver Resolver

	query     string
	results   []entity.Result
	selection *Selection
	err       error
	width     int
	height    int
}

// searchResultMsg delivers one scheduler result.
type searchResultMsg struct {
	result debounce.Result[*usecase.SearchOutput]
}

// NewPaletteModel creates the palette. delay is the debounce quiet period.
func NewPaletteModel(
	ctx context.Context,
	theme *styles.Theme,
	searcher Searcher,
	resolver Resolver,
	delay time.Duration,
) PaletteModel {
	input := styles.NewSearchInput(theme)
	input.Focus()

	run := func(ctx context.Context, query string) (*usecase.SearchOutput, error) {
		return searcher.Search(ctx, usecase.SearchInput{Query: query})
	}

	m := PaletteModel{
		input:    input,
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultPaletteKeyMap(),
		theme:    theme,
		ctx:      ctx,
		search:   debounce.NewScheduler(delay, run),
		resolver: resolver,
		width:    80,
		height:   24,
	}
	m.rebuildList()
	return m
}

// Init implements tea.Model.
func (m PaletteModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PaletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rebuildList()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.search.Close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			m.selection = m.choose()
			m.search.Close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			cmds = append(cmds, cmd)

		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)

			if m.input.Value() != m.query {
				m.query = m.input.Value()
				cmds = append(cmds, m.submit(m.query))
			}
		}

	case searchResultMsg:
		m.applyResult(msg.result)
	}

	return m, tea.Batch(cmds...)
}

// submit hands the query to the scheduler and waits for its answer.
func (m PaletteModel) submit(query string) tea.Cmd {
	results := m.search.Submit(m.ctx, query)
	return func() tea.Msg {
		return searchResultMsg{result: <-results}
	}
}

func (m *PaletteModel) applyResult(res debounce.Result[*usecase.SearchOutput]) {
	if res.Superseded() || res.Query != m.query {
		return
	}
	if res.Err != nil {
		m.err = res.Err
		return
	}
	m.err = nil
	m.results = nil
	if res.Value != nil {
		m.results = res.Value.Results
	}
	m.rebuildList()
}

// choose returns the highlighted result, or the navigate-or-search target
// when nothing matched.
func (m PaletteModel) choose() *Selection {
	if item, ok := m.list.SelectedItem().(styles.ResultItem); ok {
		r := item.Result
		target := r.URL
		if target == "" && r.Kind == entity.ResultKindAction {
			target = ActionTargetPrefix + r.ID
		}
		return &Selection{Target: target, Result: &r}
	}

	if strings.TrimSpace(m.query) == "" || m.resolver == nil {
		return nil
	}
	target, _, err := m.resolver.Resolve(m.ctx, m.query)
	if err != nil || target == "" {
		return nil
	}
	return &Selection{Target: target}
}

func (m *PaletteModel) rebuildList() {
	// Input box and help take six lines.
	listHeight := m.height - 6
	if listHeight < 4 {
		listHeight = 4
	}
	m.list = styles.NewResultList(m.theme, m.results, m.width, listHeight)
}

// View implements tea.Model.
func (m PaletteModel) View() string {
	t := m.theme

	body := m.list.View()
	switch {
	case m.err != nil:
		body = t.ErrorStyle.Render("Error: " + m.err.Error())
	case len(m.results) == 0 && strings.TrimSpace(m.query) != "":
		body = t.Subtle.Render("No matches. Enter opens it as a URL or search.")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		t.InputFocused.Render(m.input.View()),
		"",
		body,
		"",
		m.help.View(m.keys),
	)
}

// Selection returns the user's choice, or nil when the palette was
// cancelled or nothing could be opened.
func (m PaletteModel) Selection() *Selection {
	return m.selection
}

// Results returns the results currently shown.
func (m PaletteModel) Results() []entity.Result {
	return m.results
}

var _ tea.Model = PaletteModel{}
