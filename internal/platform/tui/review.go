package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-racer/internal/journal"
)

// Review layout constants
const (
	reviewChrome = 8 // title, tabs, borders and help bar
	minTableRows = 3
	problemColW  = 12
	answerColW   = 8
	dateColW     = 14
	attemptsColW = 9
	missRateColW = 10
	defaultLimit = 100
)

// ReviewTab selects which journal view is shown.
type ReviewTab int

const (
	TabRecentMisses ReviewTab = iota
	TabMissStats
)

func (t ReviewTab) String() string {
	switch t {
	case TabRecentMisses:
		return "Recent misses"
	case TabMissStats:
		return "Most missed"
	default:
		return "Unknown"
	}
}

// ReviewSource is the journal query surface. *journal.Store implements it.
type ReviewSource interface {
	RecentMisses(limit int) ([]journal.Round, error)
	MissStats(limit int) ([]journal.ProblemStats, error)
}

// ReviewKeyMap defines the key bindings for the review screen.
type ReviewKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextTab, k.PrevTab},
		{k.Quit},
	}
}

// DefaultReviewKeyMap returns default key bindings.
func DefaultReviewKeyMap() ReviewKeyMap {
	return ReviewKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReviewModel is the Bubble Tea model for browsing the round journal.
type ReviewModel struct {
	source   ReviewSource
	limit    int
	tab      ReviewTab
	misses   []journal.Round
	stats    []journal.ProblemStats
	err      error
	table    table.Model
	help     help.Model
	keys     ReviewKeyMap
	width    int
	height   int
	quitting bool
}

// NewReviewModel creates a review model and loads the first view.
func NewReviewModel(source ReviewSource, limit, width, height int) ReviewModel {
	if limit <= 0 {
		limit = defaultLimit
	}
	m := ReviewModel{
		source: source,
		limit:  limit,
		keys:   DefaultReviewKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	return m
}

// load queries the journal for the current tab and rebuilds the table.
func (m *ReviewModel) load() {
	m.err = nil
	switch m.tab {
	case TabRecentMisses:
		m.misses, m.err = m.source.RecentMisses(m.limit)
	case TabMissStats:
		m.stats, m.err = m.source.MissStats(m.limit)
	}
	m.table = m.createTable()
}

// createTable creates a table for the current tab.
func (m *ReviewModel) createTable() table.Model {
	var columns []table.Column
	var rows []table.Row

	switch m.tab {
	case TabRecentMisses:
		columns = []table.Column{
			{Title: "Problem", Width: problemColW},
			{Title: "Answer", Width: answerColW},
			{Title: "Chose", Width: answerColW},
			{Title: "When", Width: dateColW},
		}
		rows = make([]table.Row, len(m.misses))
		for i, r := range m.misses {
			rows[i] = table.Row{
				fmt.Sprintf("%d + %d", r.Num1, r.Num2),
				fmt.Sprintf("%d", r.Answer),
				fmt.Sprintf("%d", r.Chosen),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}

	case TabMissStats:
		columns = []table.Column{
			{Title: "Problem", Width: problemColW},
			{Title: "Misses", Width: answerColW},
			{Title: "Attempts", Width: attemptsColW},
			{Title: "Miss rate", Width: missRateColW},
		}
		rows = make([]table.Row, len(m.stats))
		for i, s := range m.stats {
			rows[i] = table.Row{
				fmt.Sprintf("%d + %d", s.Num1, s.Num2),
				fmt.Sprintf("%d", s.Misses),
				fmt.Sprintf("%d", s.Attempts),
				fmt.Sprintf("%.0f%%", s.MissRate()*100),
			}
		}
	}

	height := m.height - reviewChrome
	if height < minTableRows {
		height = minTableRows
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// rowCount returns the number of rows in the current view.
func (m ReviewModel) rowCount() int {
	if m.tab == TabMissStats {
		return len(m.stats)
	}
	return len(m.misses)
}

// Init initializes the review model.
func (m ReviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the review screen.
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
			// Two views, so next and previous both flip.
			m.tab = (m.tab + 1) % 2
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the review screen.
func (m ReviewModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("PRACTICE REVIEW", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ReviewModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, 2)
	for _, t := range []ReviewTab{TabRecentMisses, TabMissStats} {
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTableContent renders the table, an error, or an empty message.
func (m ReviewModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render(fmt.Sprintf("Could not read the journal:\n%v", m.err))
	}
	if m.rowCount() == 0 {
		return emptyStyle.Render("No missed problems yet.\nPlay a round to build your history!")
	}
	return m.table.View()
}

// Tab returns the view currently shown.
func (m ReviewModel) Tab() ReviewTab { return m.tab }

// centerText pads text on the left so it sits centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunReview runs the journal review screen.
func RunReview(source ReviewSource, limit, width, height int) error {
	p := tea.NewProgram(
		NewReviewModel(source, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
