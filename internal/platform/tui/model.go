package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letra/internal/catalog"
	"github.com/vovakirdan/letra/internal/core"
	"github.com/vovakirdan/letra/internal/registry"
	"github.com/vovakirdan/letra/internal/run"
	"github.com/vovakirdan/letra/internal/session"
	"github.com/vovakirdan/letra/internal/storage"
)

// screen identifies the active sub-model.
type screen int

const (
	screenMenu screen = iota
	screenThemes
	screenGame
	screenSummary
	screenCalendar
	screenWords
	screenScores
)

// launchMsg asks the session to resolve and open p.
type launchMsg struct {
	Params session.Params
}

// recordedMsg carries the persisted result of a finished run.
type recordedMsg struct {
	Record session.Record
}

// SessionModel manages the full flow: menu -> run -> summary -> menu.
// It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	ctx      context.Context
	svc      *session.Service
	config   core.RuntimeConfig
	username string
	logger   *log.Logger

	screen   screen
	menu     MenuModel
	themes   ThemePickerModel
	game     GameModel
	summary  SummaryModel
	calendar CalendarModel
	words    WordsModel
	scores   ScoreboardModel

	pending    *session.Params
	last       session.Params
	status     string
	recording  bool
	quitOnDone bool
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(ctx context.Context, svc *session.Service, cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	m := SessionModel{
		ctx:      ctx,
		svc:      svc,
		config:   cfg,
		username: username,
		logger:   logger,
	}
	m.menu = m.newMenu()
	return m
}

// WithLaunch opens p instead of the menu when the session starts.
func (m SessionModel) WithLaunch(p session.Params) SessionModel {
	m.pending = &p
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.pending != nil {
		p := *m.pending
		return func() tea.Msg { return launchMsg{Params: p} }
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case launchMsg:
		m.pending = nil
		return m.launch(msg.Params)

	case recordedMsg:
		return m.showRecord(msg.Record)
	}

	switch m.screen {
	case screenThemes:
		return m.updateThemes(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenSummary:
		return m.updateSummary(msg)
	case screenCalendar:
		return m.updateCalendar(msg)
	case screenWords:
		return m.updateWords(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		return m.quit()
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}
	m.status = ""
	w, h := m.config.ScreenW, m.config.ScreenH

	switch selected.Target {
	case TargetMode:
		info, err := registry.Lookup(selected.ModeID)
		if err != nil {
			return m.toMenu(err.Error())
		}
		if info.PicksTheme {
			m.themes = NewThemePickerModel(info, m.svc.Themes(), themeCounts(m.svc.Catalog(), m.svc.Themes()), w, h)
			m.screen = screenThemes
			return m, m.themes.Init()
		}
		return m.launch(session.Params{Mode: info.ID})

	case TargetCalendar:
		m.calendar = NewCalendarModel(m.svc.Calendar(m.ctx), w, h)
		m.screen = screenCalendar
		return m, m.calendar.Init()

	case TargetWords:
		m.words = NewWordsModel(m.svc.WordUsage(m.ctx), w, h)
		m.screen = screenWords
		return m, m.words.Init()

	case TargetScores:
		ctx, svc := m.ctx, m.svc
		m.scores = NewScoreboardModel(func(mode string, limit int) ([]storage.ScoreEntry, error) {
			return svc.TopScores(ctx, mode, limit)
		}, w, h)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	return m.toMenu("")
}

func (m SessionModel) updateThemes(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.themes.Update(msg)
	if picker, ok := newModel.(ThemePickerModel); ok {
		m.themes = picker
	}

	switch {
	case m.themes.IsQuitting():
		return m.quit()
	case m.themes.BackToMenu():
		return m.toMenu("")
	case m.themes.Selected():
		return m.launch(session.Params{
			Mode:  m.themes.info.ID,
			Theme: m.themes.Theme(),
			Timed: m.themes.Timed(),
		})
	}
	return m, cmd
}

// updateGame handles updates when in a run.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		return m.quit()
	}

	if m.game.BackToMenu() {
		// Leaving abandons the run; its pending tick is dropped.
		m.logger.Debug("run abandoned", "run", m.game.Run().ID(), "user", m.username)
		return m.toMenu("")
	}

	if m.game.Finished() && !m.recording {
		res, ok := m.game.Run().Result()
		if ok {
			m.recording = true
			return m, tea.Batch(cmd, recordCmd(m.ctx, m.svc, res))
		}
	}

	return m, cmd
}

func (m SessionModel) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.summary.Update(msg)
	if summary, ok := newModel.(SummaryModel); ok {
		m.summary = summary
	}

	o := m.summary.Outcome()
	switch {
	case m.summary.IsQuitting():
		return m.quit()
	case m.summary.BackToMenu():
		if m.quitOnDone {
			return m.quit()
		}
		return m.toMenu("")
	case m.summary.WantsPractice():
		return m.launch(session.Params{Mode: string(run.ModePractice), Theme: o.Theme, Timed: true})
	case m.summary.WantsAgain():
		return m.launch(m.last)
	}
	return m, cmd
}

func (m SessionModel) updateCalendar(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.calendar.Update(msg)
	if cal, ok := newModel.(CalendarModel); ok {
		m.calendar = cal
	}

	switch {
	case m.calendar.IsQuitting():
		return m.quit()
	case m.calendar.IsGoingBack():
		return m.toMenu("")
	case m.calendar.Selected() != "":
		return m.launch(session.Params{Mode: session.ModeView, ViewDate: m.calendar.Selected()})
	}
	return m, cmd
}

func (m SessionModel) updateWords(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.words.Update(msg)
	if words, ok := newModel.(WordsModel); ok {
		m.words = words
	}

	switch {
	case m.words.IsQuitting():
		return m.quit()
	case m.words.IsGoingBack():
		return m.toMenu("")
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	switch {
	case m.scores.IsQuitting():
		return m.quit()
	case m.scores.IsGoingBack():
		return m.toMenu("")
	}
	return m, cmd
}

// launch resolves p and opens the run or the stored result.
func (m SessionModel) launch(p session.Params) (tea.Model, tea.Cmd) {
	l, err := m.svc.Launch(m.ctx, p)
	if err != nil {
		m.logger.Warn("launch failed", "mode", p.Mode, "user", m.username, "error", err)
		return m.toMenu(err.Error())
	}
	w, h := m.config.ScreenW, m.config.ScreenH

	if l.Kind == session.KindView {
		m.summary = NewSummaryModel(OutcomeFromDaily(l.Date, l.Daily, l.Found), w, h)
		m.screen = screenSummary
		return m, m.summary.Init()
	}

	m.last = p
	m.recording = false
	m.game = NewGameModel(l.Run, l.Info, l.AutoStart, m.config.TickInterval, w, h)
	m.screen = screenGame
	return m, m.game.Init()
}

// showRecord opens the summary of a run that just finished.
func (m SessionModel) showRecord(rec session.Record) (tea.Model, tea.Cmd) {
	if m.screen != screenGame || rec.Result.RunID != m.game.Run().ID() {
		return m, nil
	}
	m.recording = false
	m.summary = NewSummaryModel(OutcomeFromRecord(rec), m.config.ScreenW, m.config.ScreenH)
	m.screen = screenSummary
	return m, m.summary.Init()
}

func (m SessionModel) toMenu(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.menu = m.newMenu()
	m.screen = screenMenu
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.config, m.svc.Today(), m.svc.DailyPlayed(m.ctx))
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenThemes:
		return m.themes.View()
	case screenGame:
		return m.game.View()
	case screenSummary:
		return m.summary.View()
	case screenCalendar:
		return m.calendar.View()
	case screenWords:
		return m.words.View()
	case screenScores:
		return m.scores.View()
	}

	view := m.menu.View()
	if m.status != "" {
		view += "\n" + DefaultStyles().Warning.Render(centerText(m.status, m.config.ScreenW)) + "\n"
	}
	return view
}

// recordCmd persists a finished run off the update loop.
func recordCmd(ctx context.Context, svc *session.Service, res run.Result) tea.Cmd {
	return func() tea.Msg {
		return recordedMsg{Record: svc.Record(ctx, res)}
	}
}

func themeCounts(c *catalog.Catalog, themes []string) map[string]int {
	counts := make(map[string]int, len(themes))
	for _, t := range themes {
		if t == catalog.RandomTheme {
			counts[t] = c.WordCount()
			continue
		}
		if words, ok := c.Words(t); ok {
			counts[t] = len(words)
		}
	}
	return counts
}

// Run starts the Bubble Tea program on the local terminal. A non-nil
// launch opens that run directly and exits after its summary.
func Run(ctx context.Context, svc *session.Service, cfg core.RuntimeConfig, launch *session.Params, logger *log.Logger) error {
	model := NewSessionModel(ctx, svc, cfg, "", logger)
	if launch != nil {
		model = model.WithLaunch(*launch)
		model.quitOnDone = true
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
