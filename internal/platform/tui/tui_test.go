package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/letra/internal/catalog"
	"github.com/vovakirdan/letra/internal/core"
	"github.com/vovakirdan/letra/internal/registry"
	"github.com/vovakirdan/letra/internal/results"
	"github.com/vovakirdan/letra/internal/run"
	"github.com/vovakirdan/letra/internal/session"
	"github.com/vovakirdan/letra/internal/storage"
)

func runes(s string) []tea.KeyMsg {
	out := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

func typeText(t *testing.T, m GameModel, s string) GameModel {
	t.Helper()
	for _, k := range runes(s) {
		next, _ := m.Update(k)
		m = next.(GameModel)
	}
	return m
}

func startedGame(t *testing.T, cfg run.Config, words ...string) GameModel {
	t.Helper()
	r := run.New(cfg, words)
	m := NewGameModel(r, registry.Info{ID: string(cfg.Mode), Title: cfg.Mode.String()}, true, time.Second, 80, 24)
	if m.Init() == nil {
		t.Fatal("auto-start screen should schedule a start")
	}
	next, _ := m.Update(startMsg{RunID: r.ID()})
	m = next.(GameModel)
	if got := r.Snapshot().Phase; got != run.InProgress {
		t.Fatalf("phase = %v, want in progress", got)
	}
	return m
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}}, MenuActionToggle},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, want %d", tt.msg.String(), got, tt.want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText overflow = %q", got)
	}
}

func TestGameSolvesTimedRun(t *testing.T) {
	m := startedGame(t, run.Config{Mode: run.ModePractice, Timed: true, TimeLimit: 60}, "cat", "dog")

	m = typeText(t, m, "cat")
	if m.Finished() {
		t.Fatal("finished after first word")
	}
	if snap := m.Run().Snapshot(); snap.Index != 1 || snap.Score != 1 {
		t.Fatalf("after first word: index %d score %d", snap.Index, snap.Score)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared after a correct answer: %q", m.input.Value())
	}

	m = typeText(t, m, "dog")
	if !m.Finished() {
		t.Fatal("run should be finished")
	}
	res, ok := m.Run().Result()
	if !ok || res.FinalScore != 62 {
		t.Errorf("result = %+v, %v; want final 62", res, ok)
	}
}

func TestGameTicks(t *testing.T) {
	m := startedGame(t, run.Config{Mode: run.ModePractice, Timed: true, TimeLimit: 2}, "cat")

	next, cmd := m.Update(TickMsg{RunID: "someone-else"})
	m = next.(GameModel)
	if cmd != nil || m.Run().Snapshot().TimeLeft != 2 {
		t.Fatal("stale tick should be ignored")
	}

	next, cmd = m.Update(TickMsg{RunID: m.Run().ID()})
	m = next.(GameModel)
	if cmd == nil {
		t.Error("tick loop should continue while time is left")
	}
	if m.Run().Snapshot().TimeLeft != 1 {
		t.Errorf("time left = %d, want 1", m.Run().Snapshot().TimeLeft)
	}

	next, cmd = m.Update(TickMsg{RunID: m.Run().ID()})
	m = next.(GameModel)
	if cmd != nil {
		t.Error("tick loop should stop when the run ends")
	}
	if !m.Finished() {
		t.Error("run should finish when the clock hits zero")
	}
}

func TestGateWaitsForEnter(t *testing.T) {
	r := run.New(run.Config{Mode: run.ModeDaily, Date: "2025-11-01"}, []string{"cat"})
	m := NewGameModel(r, registry.Info{ID: "daily", Title: "Daily"}, false, time.Second, 80, 24)
	if m.Init() != nil {
		t.Fatal("gated screen should not start by itself")
	}

	m = typeText(t, m, "cat")
	if r.Snapshot().Phase != run.NotStarted {
		t.Fatal("typing at the gate should not start the run")
	}
	if !strings.Contains(m.View(), "Press enter to start") {
		t.Error("gate prompt missing")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(GameModel)
	if r.Snapshot().Phase != run.InProgress {
		t.Fatal("enter should start the run")
	}
	if cmd == nil {
		t.Error("timed run should schedule a tick")
	}
}

func TestGameBackAndQuit(t *testing.T) {
	m := startedGame(t, run.Config{Mode: run.ModeRelax}, "cat")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(GameModel).BackToMenu() {
		t.Error("esc should go back to the menu")
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(GameModel).IsQuitting() {
		t.Error("ctrl+c should quit")
	}
}

func TestRelaxRevealAndAdvance(t *testing.T) {
	m := startedGame(t, run.Config{Mode: run.ModeRelax}, "cat", "dog")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(GameModel)
	if snap := m.Run().Snapshot(); snap.Status != run.Revealed || snap.Answer != "CAT" {
		t.Fatalf("after reveal: %+v", snap)
	}

	// Input is blocked until the player moves on.
	m = typeText(t, m, "cat")
	if m.Run().Snapshot().Score != 0 {
		t.Fatal("revealed word should not score")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(GameModel)
	if snap := m.Run().Snapshot(); snap.Index != 1 || snap.Status != run.Guessing {
		t.Fatalf("after advance: %+v", snap)
	}

	m = typeText(t, m, "dog")
	if snap := m.Run().Snapshot(); snap.Status != run.Solved || snap.Score != 1 {
		t.Fatalf("after solving: %+v", snap)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(GameModel)
	if !m.Finished() {
		t.Fatal("advancing past the last word should finish")
	}
	if res, _ := m.Run().Result(); res.FinalScore != 1 {
		t.Errorf("final = %d, want 1", res.FinalScore)
	}
}

func TestSummaryKeys(t *testing.T) {
	daily := NewSummaryModel(Outcome{Mode: run.ModeDaily, Theme: "Ocean", FinalScore: 5}, 80, 24)
	next, _ := daily.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if next.(SummaryModel).WantsAgain() {
		t.Error("daily summary should not offer a replay")
	}
	next, _ = daily.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if !next.(SummaryModel).WantsPractice() {
		t.Error("daily summary should offer practice on the same theme")
	}

	practice := NewSummaryModel(Outcome{Mode: run.ModePractice, Theme: "Ocean"}, 80, 24)
	next, _ = practice.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if !next.(SummaryModel).WantsAgain() {
		t.Error("practice summary should offer a replay")
	}
	next, _ = practice.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !next.(SummaryModel).BackToMenu() {
		t.Error("enter should return to the menu")
	}
}

func TestThemePickerToggle(t *testing.T) {
	info := registry.Info{ID: "practice", Title: "Practice", Timer: true, PicksTheme: true}
	m := NewThemePickerModel(info, []string{"Random", "Ocean"}, nil, 80, 24)
	if !m.Timed() {
		t.Fatal("timer should default to on for timed modes")
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = next.(ThemePickerModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(ThemePickerModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ThemePickerModel)

	if !m.Selected() || m.Theme() != "Ocean" || m.Timed() {
		t.Errorf("selected=%v theme=%q timed=%v", m.Selected(), m.Theme(), m.Timed())
	}
}

// drain runs cmd and any batched commands, returning the produced messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, drain(c)...)
	}
	return out
}

func findRecorded(t *testing.T, cmd tea.Cmd) recordedMsg {
	t.Helper()
	for _, msg := range drain(cmd) {
		if rec, ok := msg.(recordedMsg); ok {
			return rec
		}
	}
	t.Fatal("no record command was issued")
	return recordedMsg{}
}

func newTestService(t *testing.T) *session.Service {
	t.Helper()
	c := catalog.New(catalog.Theme{Name: "Ocean", Words: []string{"whale"}})
	rs := results.New(storage.NewMemory(), nil)
	now := func() time.Time { return time.Date(2025, 11, 1, 9, 0, 0, 0, time.Local) }
	return session.New(c, rs,
		session.WithSettings(session.Settings{Words: 1, TimeLimit: 60}),
		session.WithClock(now),
	)
}

func sessionType(t *testing.T, m SessionModel, s string) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range runes(s) {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(SessionModel)
	}
	return m, cmd
}

func TestSessionDailyFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	m := NewSessionModel(ctx, svc, core.DefaultConfig(), "tester", nil)

	next, cmd := m.Update(launchMsg{Params: session.Params{Mode: "daily"}})
	m = next.(SessionModel)
	if m.screen != screenGame || cmd != nil {
		t.Fatalf("screen = %d, want the gated run screen", m.screen)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)

	m, cmd = sessionType(t, m, "whale")
	rec := findRecorded(t, cmd)
	if rec.Record.Warning != nil || rec.Record.Daily == nil {
		t.Fatalf("record = %+v", rec.Record)
	}

	next, _ = m.Update(rec)
	m = next.(SessionModel)
	if m.screen != screenSummary {
		t.Fatalf("screen = %d, want summary", m.screen)
	}
	if got := m.summary.Outcome().FinalScore; got != 61 {
		t.Errorf("final = %d, want 61", got)
	}
	if !strings.Contains(m.View(), "61") {
		t.Error("summary should show the final score")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	if m.screen != screenMenu || !m.menu.dailyPlayed {
		t.Fatal("menu should mark today's daily as played")
	}

	// A second daily opens the stored result.
	next, _ = m.Update(launchMsg{Params: session.Params{Mode: "daily"}})
	m = next.(SessionModel)
	if m.screen != screenSummary || !m.summary.Outcome().Stored {
		t.Fatalf("screen = %d, want stored result view", m.screen)
	}
	if got := m.summary.Outcome().FinalScore; got != 61 {
		t.Errorf("stored final = %d, want 61", got)
	}
}

func TestSessionPracticeFromMenu(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	m := NewSessionModel(ctx, svc, core.DefaultConfig(), "tester", nil)

	// Menu order: daily, practice, relax.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(SessionModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	if m.screen != screenThemes {
		t.Fatalf("screen = %d, want theme picker", m.screen)
	}

	// Random, then Ocean.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(SessionModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	if m.screen != screenGame {
		t.Fatalf("screen = %d, want run", m.screen)
	}
	if got := m.game.Run().Config().Theme; got != "Ocean" {
		t.Errorf("theme = %q", got)
	}

	var start tea.Msg
	for _, msg := range drain(cmd) {
		if s, ok := msg.(startMsg); ok {
			start = s
		}
	}
	if start == nil {
		t.Fatal("practice should auto-start")
	}
	next, _ = m.Update(start)
	m = next.(SessionModel)

	m, cmd = sessionType(t, m, "whale")
	next, _ = m.Update(findRecorded(t, cmd))
	m = next.(SessionModel)
	if m.screen != screenSummary || m.summary.Outcome().FinalScore != 61 {
		t.Fatalf("screen=%d outcome=%+v", m.screen, m.summary.Outcome())
	}

	// Replaying keeps the same launch parameters.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(SessionModel)
	if m.screen != screenGame || m.game.Run().Config().Theme != "Ocean" {
		t.Fatal("replay should start another Ocean run")
	}
}

func TestSessionLaunchErrorReturnsToMenu(t *testing.T) {
	m := NewSessionModel(context.Background(), newTestService(t), core.DefaultConfig(), "tester", nil)
	next, _ := m.Update(launchMsg{Params: session.Params{Mode: "daily", Date: "not-a-date"}})
	m = next.(SessionModel)
	if m.screen != screenMenu || m.status == "" {
		t.Fatalf("screen=%d status=%q", m.screen, m.status)
	}
}
