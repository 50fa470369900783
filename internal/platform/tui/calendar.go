package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/letra/internal/results"
)

// CalendarModel lists stored Daily results, newest first.
type CalendarModel struct {
	days      []results.DailyResult
	table     table.Model
	help      help.Model
	keys      TableKeyMap
	styles    Styles
	width     int
	height    int
	selected  string
	goingBack bool
	quitting  bool
}

// NewCalendarModel creates the calendar screen.
func NewCalendarModel(days []results.DailyResult, width, height int) CalendarModel {
	m := CalendarModel{
		days:   days,
		help:   help.New(),
		keys:   DefaultTableKeyMap(true, false),
		styles: DefaultStyles(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

func (m CalendarModel) createTable() table.Model {
	t := newTable([]table.Column{
		{Title: "Date", Width: 12},
		{Title: "Theme", Width: 12},
		{Title: "Solved", Width: 7},
		{Title: "Bonus", Width: 6},
		{Title: "Final", Width: 6},
		{Title: "Played", Width: 14},
	}, m.height-8)

	rows := make([]table.Row, len(m.days))
	for i, d := range m.days {
		rows[i] = table.Row{
			d.Date,
			d.Theme,
			fmt.Sprintf("%d/%d", d.Score, len(d.Words)),
			fmt.Sprintf("%d", d.TimeLeft),
			fmt.Sprintf("%d", d.FinalScore),
			humanize.Time(d.CreatedAt()),
		}
	}
	t.SetRows(rows)
	return t
}

// Init initializes the calendar.
func (m CalendarModel) Init() tea.Cmd {
	return nil
}

// Update handles input.
func (m CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if row := m.table.SelectedRow(); row != nil {
				m.selected = row[0]
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the calendar.
func (m CalendarModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render(centerText("CALENDAR", m.width)))
	b.WriteString("\n\n")

	content := emptyNotice("No daily results yet.\nPlay today's Daily to start your calendar!")
	if len(m.days) > 0 {
		content = m.table.View()
	}
	b.WriteString(centerBlock(m.styles.Box.Render(content), m.width))

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the date chosen for viewing, or "".
func (m CalendarModel) Selected() string {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to menu.
func (m CalendarModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m CalendarModel) IsQuitting() bool {
	return m.quitting
}
