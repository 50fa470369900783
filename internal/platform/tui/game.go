package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/letra/internal/registry"
	"github.com/vovakirdan/letra/internal/run"
)

const (
	lowTimeThreshold = 10 // seconds left when the clock turns red
	progressWidth    = 30
)

// startMsg starts the run it names.
type startMsg struct {
	RunID string
}

// GameModel is the run screen: start gate, prompt, answer input and the
// countdown.
type GameModel struct {
	run      *run.Run
	info     registry.Info
	input    textinput.Model
	keys     GameKeyMap
	help     help.Model
	styles   Styles
	interval time.Duration
	auto     bool

	width  int
	height int

	lastValue  string
	finished   bool
	backToMenu bool
	quitting   bool
}

// NewGameModel creates the screen for r. With autoStart the run starts as
// soon as the screen is initialised, otherwise it waits at the start gate.
func NewGameModel(r *run.Run, info registry.Info, autoStart bool, interval time.Duration, width, height int) GameModel {
	ti := textinput.New()
	ti.Placeholder = "type the word"
	ti.CharLimit = 64
	ti.Width = 32
	ti.Prompt = "> "

	if interval <= 0 {
		interval = time.Second
	}

	return GameModel{
		run:      r,
		info:     info,
		input:    ti,
		keys:     DefaultGameKeyMap(r.Config().Mode == run.ModeRelax),
		help:     help.New(),
		styles:   DefaultStyles(),
		interval: interval,
		auto:     autoStart,
		width:    width,
		height:   height,
	}
}

// Init schedules the start of an auto-started run.
func (m GameModel) Init() tea.Cmd {
	if !m.auto {
		return nil
	}
	id := m.run.ID()
	return func() tea.Msg { return startMsg{RunID: id} }
}

// Update handles messages for the run screen.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		if msg.RunID != m.run.ID() {
			return m, nil
		}
		return m.start()

	case TickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// start begins the run and, for timed runs, the tick loop.
func (m GameModel) start() (tea.Model, tea.Cmd) {
	if !m.run.Start() {
		return m, nil
	}
	snap := m.run.Snapshot()
	if snap.Phase == run.Completed {
		m.finished = true
		return m, nil
	}

	cmds := []tea.Cmd{m.input.Focus(), textinput.Blink}
	if snap.Config.Timed {
		cmds = append(cmds, tickCmd(m.run.ID(), m.interval))
	}
	return m, tea.Batch(cmds...)
}

// handleTick counts down. Ticks from another run are dropped, which ends
// their loop.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.RunID != m.run.ID() {
		return m, nil
	}
	switch m.run.Tick() {
	case run.Ticked:
		return m, tickCmd(m.run.ID(), m.interval)
	case run.Finished:
		m.finished = true
		m.input.Blur()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil
	}

	snap := m.run.Snapshot()
	switch snap.Phase {
	case run.NotStarted:
		if key.Matches(msg, m.keys.Start) {
			return m.start()
		}
		return m, nil
	case run.Completed:
		return m, nil
	}

	if snap.Config.Mode == run.ModeRelax {
		if key.Matches(msg, m.keys.Reveal) {
			m.run.Reveal()
			return m, nil
		}
		if snap.Status != run.Guessing {
			if key.Matches(msg, m.keys.Next) {
				m.resetInput()
				if m.run.Advance() == run.Finished {
					m.finished = true
					m.input.Blur()
				}
			}
			return m, nil
		}
	}

	if msg.Type == tea.KeyEnter || msg.Type == tea.KeyTab {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.lastValue {
		m.lastValue = v
		switch m.run.Submit(v) {
		case run.Correct:
			m.resetInput()
		case run.Finished:
			m.resetInput()
			m.finished = true
			m.input.Blur()
		}
	}
	return m, cmd
}

func (m *GameModel) resetInput() {
	m.input.Reset()
	m.lastValue = ""
}

// View renders the run screen.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.run.Snapshot()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerBlock(m.styles.Title.Render(strings.ToUpper(m.info.Title)), m.width))
	b.WriteString("\n")
	b.WriteString(centerBlock(m.styles.Subtitle.Render(m.subtitle(snap)), m.width))
	b.WriteString("\n\n")

	if snap.Phase == run.NotStarted {
		b.WriteString(m.renderGate(snap))
	} else {
		b.WriteString(m.renderPlay(snap))
	}

	b.WriteString("\n\n")
	b.WriteString(centerBlock(m.styles.Help.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m GameModel) subtitle(snap run.Snapshot) string {
	theme := snap.Config.Theme
	if theme == "" {
		theme = "Random"
	}
	parts := []string{theme}
	if snap.Config.Date != "" {
		parts = append(parts, snap.Config.Date)
	}
	return strings.Join(parts, "  ·  ")
}

func (m GameModel) renderGate(snap run.Snapshot) string {
	var lines []string
	if snap.Config.Timed {
		lines = append(lines, fmt.Sprintf("%d words in %d seconds.", snap.Total, snap.Config.TimeLimit))
		lines = append(lines, "Every second left over is a bonus point.")
	} else {
		lines = append(lines, fmt.Sprintf("%d words, no clock.", snap.Total))
	}
	if snap.Config.Mode == run.ModeDaily {
		lines = append(lines, "You get one attempt per day.")
	}
	lines = append(lines, "", m.styles.HUDValue.Render("Press enter to start"))
	return centerBlock(m.styles.Box.Render(strings.Join(lines, "\n")), m.width)
}

func (m GameModel) renderPlay(snap run.Snapshot) string {
	var b strings.Builder

	hud := []string{
		m.styles.HUDLabel.Render("Word ") + m.styles.HUDValue.Render(fmt.Sprintf("%d/%d", min(snap.Index+1, snap.Total), snap.Total)),
		m.styles.HUDLabel.Render("Score ") + m.styles.HUDValue.Render(fmt.Sprintf("%d", snap.Score)),
	}
	if snap.Config.Timed {
		clock := m.styles.HUDValue
		if snap.TimeLeft <= lowTimeThreshold {
			clock = m.styles.TimeLow
		}
		hud = append(hud, m.styles.HUDLabel.Render("Time ")+clock.Render(fmt.Sprintf("%ds", snap.TimeLeft)))
	}
	b.WriteString(centerBlock(strings.Join(hud, "    "), m.width))
	b.WriteString("\n")
	b.WriteString(centerBlock(progressBar(m.styles, snap.Score, snap.Total, progressWidth), m.width))
	b.WriteString("\n\n")

	if snap.Phase == run.Completed {
		b.WriteString(centerBlock(m.styles.Correct.Render("Done!"), m.width))
		return b.String()
	}

	b.WriteString(centerBlock(letterTiles(m.styles.Tile, snap.Scrambled), m.width))
	b.WriteString("\n\n")

	switch snap.Status {
	case run.Solved:
		b.WriteString(centerBlock(letterTiles(m.styles.TileSolved, snap.Answer), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerBlock(m.styles.Correct.Render("Correct!"), m.width))
	case run.Revealed:
		b.WriteString(centerBlock(letterTiles(m.styles.Tile, snap.Answer), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerBlock(m.styles.Desc.Render("Revealed"), m.width))
	default:
		b.WriteString(centerBlock(m.input.View(), m.width))
		b.WriteString("\n\n")
		if snap.Close {
			b.WriteString(centerBlock(m.styles.Close.Render("So close!"), m.width))
		}
	}

	return b.String()
}

// Finished reports whether the run completed on this screen.
func (m GameModel) Finished() bool {
	return m.finished
}

// Run returns the run shown by this screen.
func (m GameModel) Run() *run.Run {
	return m.run
}

// BackToMenu returns true if user wants to go back.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}
