package session

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letra/internal/catalog"
	"github.com/vovakirdan/letra/internal/results"
	"github.com/vovakirdan/letra/internal/run"
	"github.com/vovakirdan/letra/internal/storage"
)

var ctx = context.Background()

func fixedClock() time.Time {
	return time.Date(2025, 11, 1, 9, 30, 0, 0, time.Local)
}

func newTestService(t *testing.T, kv storage.KV, opts ...Option) *Service {
	t.Helper()
	logger := log.New(io.Discard)
	c := catalog.New(catalog.Theme{Name: "Ocean", Words: []string{"whale", "sea turtle"}})
	opts = append([]Option{WithLogger(logger), WithClock(fixedClock)}, opts...)
	return New(c, results.New(kv, logger), opts...)
}

// solve plays every word of r correctly and returns the result.
func solve(t *testing.T, r *run.Run) run.Result {
	t.Helper()
	r.Start()
	for _, w := range r.Words() {
		r.Submit(w)
	}
	res, ok := r.Result()
	if !ok {
		t.Fatal("run did not complete")
	}
	return res
}

func TestLaunchDailyThenView(t *testing.T) {
	svc := newTestService(t, storage.NewMemory())

	l, err := svc.Launch(ctx, Params{Mode: "daily", StartGame: true})
	if err != nil {
		t.Fatalf("Launch() failed: %v", err)
	}
	if l.Kind != KindRun || !l.AutoStart {
		t.Fatalf("launch = %+v", l)
	}
	cfg := l.Run.Config()
	if cfg.Date != "2025-11-01" || cfg.Theme != "Ocean" {
		t.Errorf("daily config = %+v", cfg)
	}
	if svc.DailyPlayed(ctx) {
		t.Error("daily should not be played yet")
	}

	rec := svc.Record(ctx, solve(t, l.Run))
	if rec.Warning != nil || rec.Daily == nil {
		t.Fatalf("Record() = %+v", rec)
	}
	if rec.Daily.FinalScore != 2+60 {
		t.Errorf("final score = %d, want 62", rec.Daily.FinalScore)
	}

	l, err = svc.Launch(ctx, Params{Mode: "daily", StartGame: true})
	if err != nil {
		t.Fatalf("Launch() failed: %v", err)
	}
	if l.Kind != KindView || !l.Found || l.Daily.Date != "2025-11-01" {
		t.Errorf("second daily launch = %+v, want stored result view", l)
	}
	if !svc.DailyPlayed(ctx) {
		t.Error("daily should be played")
	}
}

func TestDailyStartGate(t *testing.T) {
	svc := newTestService(t, storage.NewMemory())
	l, err := svc.Launch(ctx, Params{Mode: "daily", Date: "2025-10-31"})
	if err != nil {
		t.Fatalf("Launch() failed: %v", err)
	}
	if l.AutoStart {
		t.Error("daily without startGame should wait at the start gate")
	}
	if l.Run.Config().Date != "2025-10-31" {
		t.Errorf("date = %s", l.Run.Config().Date)
	}
}

func TestLaunchViewMissing(t *testing.T) {
	svc := newTestService(t, storage.NewMemory())
	l, err := svc.Launch(ctx, Params{Mode: ModeView, ViewDate: "2020-01-01"})
	if err != nil {
		t.Fatalf("Launch() failed: %v", err)
	}
	if l.Kind != KindView || l.Found {
		t.Errorf("launch = %+v", l)
	}
}

func TestLaunchErrors(t *testing.T) {
	svc := newTestService(t, storage.NewMemory())
	if _, err := svc.Launch(ctx, Params{Mode: "blitz"}); err == nil {
		t.Error("expected error for unknown mode")
	}
	if _, err := svc.Launch(ctx, Params{Mode: "daily", Date: "11/01/2025"}); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestLaunchPracticeAndRelax(t *testing.T) {
	svc := newTestService(t, storage.NewMemory(), WithSettings(Settings{Words: 1, TimeLimit: 30}))

	l, err := svc.Launch(ctx, Params{Mode: "practice", Timed: true, Theme: catalog.RandomTheme})
	if err != nil {
		t.Fatalf("Launch() failed: %v", err)
	}
	if !l.AutoStart || len(l.Run.Words()) != 1 || l.Run.Config().TimeLimit != 30 {
		t.Errorf("practice launch = %+v words=%v", l.Run.Config(), l.Run.Words())
	}

	l, _ = svc.Launch(ctx, Params{Mode: "relax", Theme: "Ocean"})
	if l.Run.Config().Timed || l.Run.Config().Mode != run.ModeRelax {
		t.Errorf("relax launch = %+v", l.Run.Config())
	}
}

func TestRecordDuplicateDailyWarns(t *testing.T) {
	svc := newTestService(t, storage.NewMemory())
	l, _ := svc.Launch(ctx, Params{Mode: "daily"})
	res := solve(t, l.Run)

	svc.Record(ctx, res)
	rec := svc.Record(ctx, res)
	if !errors.Is(rec.Warning, results.ErrAlreadyRecorded) {
		t.Errorf("Warning = %v, want ErrAlreadyRecorded", rec.Warning)
	}
	if rec.Result.FinalScore != res.FinalScore {
		t.Error("result must survive a persistence warning")
	}

	usage := svc.WordUsage(ctx)
	for _, row := range usage {
		if row.Count != 1 {
			t.Errorf("%s counted %d times", row.Word, row.Count)
		}
	}
}

func TestDailyOverCorruptRecord(t *testing.T) {
	kv := storage.NewMemory()
	kv.Set(ctx, results.DailyPrefix+"2025-11-01", "{not json")
	svc := newTestService(t, kv)

	l, err := svc.Launch(ctx, Params{Mode: "daily", StartGame: true})
	if err != nil {
		t.Fatalf("Launch() failed: %v", err)
	}
	if l.Kind != KindRun {
		t.Fatalf("launch kind = %v, want run", l.Kind)
	}
	rec := svc.Record(ctx, solve(t, l.Run))
	if rec.Warning != nil || rec.Daily == nil {
		t.Fatalf("Record() = %+v", rec)
	}
	if !svc.DailyPlayed(ctx) {
		t.Error("daily should be played after replacing the corrupt record")
	}
	l, err = svc.Launch(ctx, Params{Mode: "daily", StartGame: true})
	if err != nil || l.Kind != KindView {
		t.Errorf("second daily launch = %+v, %v; want stored result view", l, err)
	}
}

type brokenKV struct{ storage.KV }

func (brokenKV) SetIfAbsent(context.Context, string, string) (bool, error) {
	return false, errors.New("read-only")
}

func TestRecordWriteFailureKeepsResult(t *testing.T) {
	svc := newTestService(t, brokenKV{storage.NewMemory()})
	l, _ := svc.Launch(ctx, Params{Mode: "daily"})
	res := solve(t, l.Run)

	rec := svc.Record(ctx, res)
	if rec.Warning == nil || rec.Daily != nil {
		t.Errorf("Record() = %+v, want a warning", rec)
	}
	if rec.Result.Score != 2 {
		t.Errorf("score = %d", rec.Result.Score)
	}
}

func TestRecordPracticeBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	svc := newTestService(t, store, WithScoreboard(store))

	rec := svc.Record(ctx, run.Result{Mode: run.ModePractice, Theme: "Ocean", Words: []string{"whale"}, FinalScore: 40})
	if !rec.NewBest || rec.Best != 40 {
		t.Errorf("first record = %+v", rec)
	}
	rec = svc.Record(ctx, run.Result{Mode: run.ModePractice, Theme: "Ocean", Words: []string{"whale"}, FinalScore: 20})
	if rec.NewBest || rec.Best != 40 {
		t.Errorf("second record = %+v", rec)
	}

	top, err := svc.TopScores(ctx, "practice", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 2 || top[0].Score != 40 {
		t.Errorf("TopScores() = %+v", top)
	}
}

func TestWordUsageOrdering(t *testing.T) {
	kv := storage.NewMemory()
	svc := newTestService(t, kv)
	rs := results.New(kv, log.New(io.Discard))
	rs.IncrementWordUsage(ctx, []string{"whale", "coral"}, "2025-11-01")
	rs.IncrementWordUsage(ctx, []string{"whale"}, "2025-10-30")

	rows := svc.WordUsage(ctx)
	if len(rows) != 2 || rows[0].Word != "whale" || rows[1].Word != "coral" {
		t.Fatalf("rows = %+v", rows)
	}
	if !slices.Equal(rows[0].Dates, []string{"2025-10-30", "2025-11-01"}) || rows[0].Last != "2025-11-01" {
		t.Errorf("whale row = %+v", rows[0])
	}
}

func TestThemesStartWithRandom(t *testing.T) {
	svc := newTestService(t, storage.NewMemory())
	if got := svc.Themes(); !slices.Equal(got, []string{"Random", "Ocean"}) {
		t.Errorf("Themes() = %v", got)
	}
}
