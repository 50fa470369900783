package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/letra/internal/session"
)

// WordsModel shows how often each word appeared in stored Daily runs.
type WordsModel struct {
	rows      []session.UsageRow
	table     table.Model
	help      help.Model
	keys      TableKeyMap
	styles    Styles
	width     int
	height    int
	goingBack bool
	quitting  bool
}

// NewWordsModel creates the word history screen.
func NewWordsModel(rows []session.UsageRow, width, height int) WordsModel {
	m := WordsModel{
		rows:   rows,
		help:   help.New(),
		keys:   DefaultTableKeyMap(false, false),
		styles: DefaultStyles(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

func (m WordsModel) createTable() table.Model {
	t := newTable([]table.Column{
		{Title: "Word", Width: 18},
		{Title: "Count", Width: 6},
		{Title: "Last used", Width: 12},
	}, m.height-8)

	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = table.Row{strings.ToUpper(r.Word), fmt.Sprintf("%d", r.Count), r.Last}
	}
	t.SetRows(rows)
	return t
}

// Init initializes the screen.
func (m WordsModel) Init() tea.Cmd {
	return nil
}

// Update handles input.
func (m WordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the screen.
func (m WordsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render(centerText("WORD HISTORY", m.width)))
	b.WriteString("\n\n")

	content := emptyNotice("No daily words recorded yet.")
	if len(m.rows) > 0 {
		content = m.table.View()
	}
	b.WriteString(centerBlock(m.styles.Box.Render(content), m.width))

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m WordsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m WordsModel) IsQuitting() bool {
	return m.quitting
}
