package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/letra/internal/results"
	"github.com/vovakirdan/letra/internal/run"
	"github.com/vovakirdan/letra/internal/session"
)

// Outcome is a finished or stored run as shown on the result screen.
type Outcome struct {
	Title      string
	Mode       run.Mode
	Theme      string
	Date       string
	Words      []string
	Timed      bool
	Score      int
	TimeLeft   int
	FinalScore int
	When       time.Time

	Stored  bool // read back from the result store
	Missing bool // a stored result was asked for but none exists
	Best    int
	NewBest bool
	Warning error
}

// OutcomeFromRecord builds the summary of a run that just finished.
func OutcomeFromRecord(rec session.Record) Outcome {
	res := rec.Result
	return Outcome{
		Title:      res.Mode.String() + " complete",
		Mode:       res.Mode,
		Theme:      res.Theme,
		Date:       res.Date,
		Words:      res.Words,
		Timed:      res.Timed,
		Score:      res.Score,
		TimeLeft:   res.TimeLeft,
		FinalScore: res.FinalScore,
		When:       res.CompletedAt,
		Best:       rec.Best,
		NewBest:    rec.NewBest,
		Warning:    rec.Warning,
	}
}

// OutcomeFromDaily builds the read-only view of a stored Daily result.
func OutcomeFromDaily(date string, d results.DailyResult, found bool) Outcome {
	if !found {
		return Outcome{Title: "Daily " + date, Mode: run.ModeDaily, Date: date, Stored: true, Missing: true}
	}
	return Outcome{
		Title:      "Daily " + d.Date,
		Mode:       run.ModeDaily,
		Theme:      d.Theme,
		Date:       d.Date,
		Words:      d.Words,
		Timed:      true,
		Score:      d.Score,
		TimeLeft:   d.TimeLeft,
		FinalScore: d.FinalScore,
		When:       d.CreatedAt(),
		Stored:     true,
	}
}

// SummaryModel shows a run result and offers the follow-up runs.
type SummaryModel struct {
	outcome Outcome
	keys    ResultKeyMap
	help    help.Model
	styles  Styles
	width   int
	height  int

	wantsPractice bool
	wantsAgain    bool
	backToMenu    bool
	quitting      bool
}

// NewSummaryModel creates a result screen. Daily results offer a practice
// run on the same theme; practice and relax results offer another go.
func NewSummaryModel(o Outcome, width, height int) SummaryModel {
	canPractice := !o.Missing && o.Theme != "" && o.Mode != run.ModePractice
	canAgain := o.Mode != run.ModeDaily
	return SummaryModel{
		outcome: o,
		keys:    DefaultResultKeyMap(canPractice, canAgain),
		help:    help.New(),
		styles:  DefaultStyles(),
		width:   width,
		height:  height,
	}
}

// Init initializes the summary.
func (m SummaryModel) Init() tea.Cmd {
	return nil
}

// Update handles input.
func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
		case key.Matches(msg, m.keys.Back):
			m.backToMenu = true
		case key.Matches(msg, m.keys.Practice) && m.keys.canPractice:
			m.wantsPractice = true
		case key.Matches(msg, m.keys.Again) && m.keys.canAgain:
			m.wantsAgain = true
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the result.
func (m SummaryModel) View() string {
	if m.quitting {
		return ""
	}
	o := m.outcome
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerBlock(m.styles.Title.Render(strings.ToUpper(o.Title)), m.width))
	b.WriteString("\n\n")

	if o.Missing {
		b.WriteString(centerBlock(emptyNotice("No result stored for this day."), m.width))
	} else {
		b.WriteString(centerBlock(m.styles.Box.Render(m.renderBody()), m.width))
	}

	if o.Warning != nil {
		b.WriteString("\n")
		b.WriteString(centerBlock(m.styles.Warning.Render(warningText(o.Warning)), m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(centerBlock(m.styles.Help.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m SummaryModel) renderBody() string {
	o := m.outcome
	var lines []string

	theme := o.Theme
	if theme == "" {
		theme = "Random"
	}
	lines = append(lines, m.styles.HUDLabel.Render("Theme  ")+m.styles.HUDValue.Render(theme))

	lines = append(lines, m.styles.HUDLabel.Render("Solved ")+
		m.styles.HUDValue.Render(fmt.Sprintf("%d of %d", o.Score, len(o.Words))))
	if o.Timed {
		lines = append(lines, m.styles.HUDLabel.Render("Bonus  ")+
			m.styles.HUDValue.Render(fmt.Sprintf("%d (%ds left)", o.FinalScore-o.Score, o.TimeLeft)))
	}
	lines = append(lines, m.styles.HUDLabel.Render("Final  ")+m.styles.Correct.Render(fmt.Sprintf("%d", o.FinalScore)))

	if o.Best > 0 {
		best := fmt.Sprintf("%d", o.Best)
		if o.NewBest {
			best += "  new best!"
		}
		lines = append(lines, m.styles.HUDLabel.Render("Best   ")+m.styles.HUDValue.Render(best))
	}
	if o.Stored && !o.When.IsZero() {
		lines = append(lines, m.styles.HUDLabel.Render("Played ")+m.styles.Desc.Render(humanize.Time(o.When)))
	}

	body := strings.Join(lines, "\n")
	if len(o.Words) == 0 {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.renderWords())
}

// renderWords lists the words in two columns.
func (m SummaryModel) renderWords() string {
	half := (len(m.outcome.Words) + 1) / 2
	left := make([]string, 0, half)
	right := make([]string, 0, half)
	for i, w := range m.outcome.Words {
		line := m.styles.Answer.Render(strings.ToUpper(w))
		if i < half {
			left = append(left, line)
		} else {
			right = append(right, line)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(left, "\n"), "    ", strings.Join(right, "\n"))
}

func warningText(err error) string {
	if errors.Is(err, results.ErrAlreadyRecorded) {
		return "A result for this day was already stored; this one was not saved."
	}
	return "Could not save this result: " + err.Error()
}

// Outcome returns the shown result.
func (m SummaryModel) Outcome() Outcome {
	return m.outcome
}

// WantsPractice reports whether the player asked for a practice run on the
// same theme.
func (m SummaryModel) WantsPractice() bool {
	return m.wantsPractice
}

// WantsAgain reports whether the player asked to repeat the mode.
func (m SummaryModel) WantsAgain() bool {
	return m.wantsAgain
}

// BackToMenu returns true if user wants to go back.
func (m SummaryModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit.
func (m SummaryModel) IsQuitting() bool {
	return m.quitting
}
