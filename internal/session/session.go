// Package session turns launch parameters into runs or stored-result views
// and persists finished runs. It is shared by the TUI, the plain driver and
// the SSH server.
package session

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letra/internal/catalog"
	"github.com/vovakirdan/letra/internal/core"
	"github.com/vovakirdan/letra/internal/registry"
	"github.com/vovakirdan/letra/internal/results"
	"github.com/vovakirdan/letra/internal/run"
	"github.com/vovakirdan/letra/internal/storage"
)

// ModeView inspects a stored Daily result instead of playing.
const ModeView = "view"

// Params are the launch parameters of a screen or command.
type Params struct {
	Mode      string // daily, practice, relax or view
	Timed     bool   // practice only
	Theme     string
	Date      string // daily; empty means today
	ViewDate  string // view; empty means today
	StartGame bool   // daily; start without waiting at the start gate
}

// Kind says what a Launch holds.
type Kind int

const (
	KindRun Kind = iota
	KindView
)

// Launch is the result of resolving Params.
type Launch struct {
	Kind Kind
	Info registry.Info

	// KindRun
	Run       *run.Run
	AutoStart bool

	// KindView
	Date  string
	Daily results.DailyResult
	Found bool
}

// Record is what happened when a finished run was persisted.
type Record struct {
	Result  run.Result
	Daily   *results.DailyResult
	Best    int  // practice/relax best for the theme, including this run
	NewBest bool // this run set Best
	// Warning is a non-fatal persistence problem. The result is still valid
	// and should be shown.
	Warning error
}

// Scoreboard stores practice and relax scores.
type Scoreboard interface {
	SaveScore(ctx context.Context, mode, theme string, score, words int) (int64, error)
	HighScore(ctx context.Context, mode, theme string) (int, error)
	TopScores(ctx context.Context, mode string, limit int) ([]storage.ScoreEntry, error)
}

// Settings are the practice defaults applied to every launch.
type Settings struct {
	Words     int
	TimeLimit int
}

// Service wires the catalog, the result store and the scoreboard together.
type Service struct {
	catalog  *catalog.Catalog
	results  *results.Store
	scores   Scoreboard
	settings Settings
	log      *log.Logger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithScoreboard enables the practice scoreboard.
func WithScoreboard(sb Scoreboard) Option {
	return func(s *Service) { s.scores = sb }
}

// WithSettings sets practice defaults.
func WithSettings(st Settings) Option {
	return func(s *Service) { s.settings = st }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithClock sets the clock used for "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service.
func New(c *catalog.Catalog, rs *results.Store, opts ...Option) *Service {
	s := &Service{
		catalog:  c,
		results:  rs,
		settings: Settings{Words: run.DailyWords, TimeLimit: run.DefaultTimeLimit},
		log:      log.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the word catalog.
func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

// Today returns the local calendar date.
func (s *Service) Today() string {
	return core.DateString(s.now())
}

// Themes returns the picker entries: RandomTheme followed by the catalog's
// themes in declared order.
func (s *Service) Themes() []string {
	return append([]string{catalog.RandomTheme}, s.catalog.Themes()...)
}

// DailyPlayed reports whether today's Daily has a stored result.
func (s *Service) DailyPlayed(ctx context.Context) bool {
	return s.results.HasDaily(ctx, s.Today())
}

// Launch resolves p. A Daily for a date that already has a result opens that
// result read-only instead of starting a second run. Extra run options are
// applied to a new run.
func (s *Service) Launch(ctx context.Context, p Params, opts ...run.Option) (Launch, error) {
	if p.Mode == ModeView {
		return s.view(ctx, p.ViewDate), nil
	}

	info, err := registry.Lookup(p.Mode)
	if err != nil {
		return Launch{}, err
	}

	settings := registry.Settings{
		Theme:     p.Theme,
		Timed:     p.Timed,
		Words:     s.settings.Words,
		TimeLimit: s.settings.TimeLimit,
		Options:   opts,
	}

	autoStart := true
	if p.Mode == string(run.ModeDaily) {
		date := p.Date
		if date == "" {
			date = s.Today()
		}
		if !core.ValidDate(date) {
			return Launch{}, fmt.Errorf("session: invalid date %q", date)
		}
		if l := s.view(ctx, date); l.Found {
			s.log.Debug("daily already played", "date", date)
			return l, nil
		}
		settings.Date = date
		autoStart = p.StartGame
	}

	r, err := registry.Create(p.Mode, s.catalog, settings)
	if err != nil {
		return Launch{}, err
	}
	cfg := r.Config()
	s.log.Debug("run created", "run", r.ID(), "mode", cfg.Mode, "theme", cfg.Theme, "date", cfg.Date, "words", len(r.Words()))
	return Launch{Kind: KindRun, Info: info, Run: r, AutoStart: autoStart}, nil
}

func (s *Service) view(ctx context.Context, date string) Launch {
	if date == "" {
		date = s.Today()
	}
	info, _ := registry.Lookup(string(run.ModeDaily))
	res, ok := s.results.GetDaily(ctx, date)
	return Launch{Kind: KindView, Info: info, Date: date, Daily: res, Found: ok}
}

// Record persists a finished run. Daily results go to the result store,
// practice and relax scores to the scoreboard. Failures never discard the
// result; they are logged and returned as Record.Warning.
func (s *Service) Record(ctx context.Context, res run.Result) Record {
	rec := Record{Result: res}

	if res.Mode == run.ModeDaily {
		daily, err := s.results.RecordDaily(ctx, res)
		switch {
		case errors.Is(err, results.ErrAlreadyRecorded):
			s.log.Warn("daily result already recorded", "date", res.Date, "run", res.RunID)
			rec.Warning = err
		case err != nil:
			s.log.Warn("failed to save daily result", "date", res.Date, "run", res.RunID, "error", err)
			rec.Warning = err
		default:
			rec.Daily = &daily
		}
		return rec
	}

	if s.scores == nil {
		return rec
	}
	mode := string(res.Mode)
	prev, err := s.scores.HighScore(ctx, mode, res.Theme)
	if err != nil {
		s.log.Warn("failed to load high score", "mode", mode, "theme", res.Theme, "error", err)
	}
	if _, err := s.scores.SaveScore(ctx, mode, res.Theme, res.FinalScore, len(res.Words)); err != nil {
		s.log.Warn("failed to save score", "mode", mode, "run", res.RunID, "error", err)
		rec.Warning = err
		rec.Best = prev
		return rec
	}
	rec.Best = max(prev, res.FinalScore)
	rec.NewBest = res.FinalScore > prev
	return rec
}

// Calendar lists stored Daily results, newest first.
func (s *Service) Calendar(ctx context.Context) []results.DailyResult {
	return s.results.ListDaily(ctx)
}

// UsageRow is one line of the word usage report.
type UsageRow struct {
	Word  string
	Count int
	Dates []string
	Last  string
}

// WordUsage returns usage rows ordered by count, most used first, then by
// word.
func (s *Service) WordUsage(ctx context.Context) []UsageRow {
	meta := s.results.WordUsage(ctx)
	rows := make([]UsageRow, 0, len(meta))
	for w, u := range meta {
		dates := slices.Clone(u.UsedDates)
		slices.Sort(dates)
		row := UsageRow{Word: w, Count: u.Count, Dates: dates}
		if len(dates) > 0 {
			row.Last = dates[len(dates)-1]
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b UsageRow) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	return rows
}

// TopScores returns the best practice or relax runs. Without a scoreboard it
// returns nothing.
func (s *Service) TopScores(ctx context.Context, mode string, limit int) ([]storage.ScoreEntry, error) {
	if s.scores == nil {
		return nil, nil
	}
	return s.scores.TopScores(ctx, mode, limit)
}
