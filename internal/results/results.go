// Package results persists completed Daily runs and the word-usage counters
// on top of a storage.KV.
//
// Reads never fail: a missing, unreadable or corrupt record is reported as
// absent and logged, so a single bad value cannot block listing results or
// starting a new run. Writes return their errors for the caller to surface
// as warnings.
package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letra/internal/run"
	"github.com/vovakirdan/letra/internal/storage"
)

// Store keys.
const (
	DailyPrefix = "letra:daily:"
	WordMetaKey = "letra:wordmeta"
)

// ErrAlreadyRecorded is returned when a date already has a Daily result.
var ErrAlreadyRecorded = errors.New("results: daily result already recorded")

// DailyResult is the stored outcome of one Daily run.
type DailyResult struct {
	Date       string   `json:"date"`
	Theme      string   `json:"theme"`
	Words      []string `json:"words"`
	Score      int      `json:"score"`
	TimeLeft   int      `json:"timeLeft"`
	FinalScore int      `json:"finalScore"`
	Timestamp  int64    `json:"timestamp"` // epoch milliseconds
}

// CreatedAt returns the record timestamp as a time.
func (d DailyResult) CreatedAt() time.Time {
	return time.UnixMilli(d.Timestamp)
}

// FromRun converts a completed Daily run into its stored form.
func FromRun(res run.Result) DailyResult {
	return DailyResult{
		Date:       res.Date,
		Theme:      res.Theme,
		Words:      slices.Clone(res.Words),
		Score:      res.Score,
		TimeLeft:   res.TimeLeft,
		FinalScore: res.FinalScore,
		Timestamp:  res.CompletedAt.UnixMilli(),
	}
}

// WordUsage counts how often a word appeared in completed Daily runs and on
// which dates.
type WordUsage struct {
	Count     int      `json:"count"`
	UsedDates []string `json:"used_dates"`
}

// Store reads and writes results. It is safe for concurrent use.
type Store struct {
	kv  storage.KV
	log *log.Logger

	// metaMu serialises the read-modify-write of the word-usage record.
	metaMu sync.Mutex
}

// New creates a Store over kv. A nil logger uses log.Default().
func New(kv storage.KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{kv: kv, log: logger}
}

// GetDaily returns the result stored for date. The second value is false
// when the date was never played or its record cannot be read.
func (s *Store) GetDaily(ctx context.Context, date string) (DailyResult, bool) {
	key := DailyPrefix + date
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return DailyResult{}, false
	}
	if err != nil {
		s.log.Warn("failed to load daily result", "key", key, "error", err)
		return DailyResult{}, false
	}
	var res DailyResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		s.log.Warn("corrupt daily result", "key", key, "error", err)
		return DailyResult{}, false
	}
	return res, true
}

// HasDaily reports whether date already has a readable result.
func (s *Store) HasDaily(ctx context.Context, date string) bool {
	_, ok := s.GetDaily(ctx, date)
	return ok
}

// SaveDaily stores res under its date. A date is written at most once: a
// second save returns ErrAlreadyRecorded and leaves the first record intact.
// A record that cannot be decoded does not count and is overwritten.
func (s *Store) SaveDaily(ctx context.Context, res DailyResult) error {
	if res.Date == "" {
		return fmt.Errorf("results: daily result has no date")
	}
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("results: cannot encode daily result: %w", err)
	}
	key := DailyPrefix + res.Date
	ok, err := s.kv.SetIfAbsent(ctx, key, string(data))
	if err != nil {
		return fmt.Errorf("results: cannot save daily result %s: %w", res.Date, err)
	}
	if ok {
		return nil
	}

	raw, err := s.kv.Get(ctx, key)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("results: cannot check daily result %s: %w", res.Date, err)
	}
	if err == nil {
		var existing DailyResult
		if json.Unmarshal([]byte(raw), &existing) == nil {
			return ErrAlreadyRecorded
		}
		s.log.Warn("overwriting corrupt daily result", "key", key)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("results: cannot save daily result %s: %w", res.Date, err)
	}
	return nil
}

// ListDaily returns every readable Daily result, newest date first.
func (s *Store) ListDaily(ctx context.Context) []DailyResult {
	keys, err := s.kv.ListKeys(ctx)
	if err != nil {
		s.log.Warn("failed to list daily results", "error", err)
		return nil
	}
	var dailyKeys []string
	for _, k := range keys {
		if strings.HasPrefix(k, DailyPrefix) {
			dailyKeys = append(dailyKeys, k)
		}
	}
	if len(dailyKeys) == 0 {
		return nil
	}

	values, err := s.kv.MultiGet(ctx, dailyKeys)
	if err != nil {
		s.log.Warn("failed to load daily results", "error", err)
		return nil
	}

	out := make([]DailyResult, 0, len(values))
	for _, k := range dailyKeys {
		raw, ok := values[k]
		if !ok {
			continue
		}
		var res DailyResult
		if err := json.Unmarshal([]byte(raw), &res); err != nil {
			s.log.Warn("skipping corrupt daily result", "key", k, "error", err)
			continue
		}
		out = append(out, res)
	}
	// Zero-padded dates sort correctly as strings.
	slices.SortFunc(out, func(a, b DailyResult) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}

// WordUsage returns the usage counters. A missing or corrupt record is an
// empty map.
func (s *Store) WordUsage(ctx context.Context) map[string]WordUsage {
	meta, err := s.loadMeta(ctx)
	if err != nil {
		s.log.Warn("failed to load word usage", "key", WordMetaKey, "error", err)
		return map[string]WordUsage{}
	}
	return meta
}

// IncrementWordUsage adds one to the count of every occurrence of a word in
// words and records date once per word.
func (s *Store) IncrementWordUsage(ctx context.Context, words []string, date string) error {
	if len(words) == 0 {
		return nil
	}
	s.metaMu.Lock()
	defer s.metaMu.Unlock()

	meta, err := s.loadMeta(ctx)
	if err != nil {
		// An unreadable record is replaced.
		s.log.Warn("resetting unreadable word usage", "key", WordMetaKey, "error", err)
		meta = map[string]WordUsage{}
	}
	for _, w := range words {
		u := meta[w]
		u.Count++
		if !slices.Contains(u.UsedDates, date) {
			u.UsedDates = append(u.UsedDates, date)
		}
		meta[w] = u
	}

	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("results: cannot encode word usage: %w", err)
	}
	if err := s.kv.Set(ctx, WordMetaKey, string(data)); err != nil {
		return fmt.Errorf("results: cannot save word usage: %w", err)
	}
	return nil
}

func (s *Store) loadMeta(ctx context.Context) (map[string]WordUsage, error) {
	raw, err := s.kv.Get(ctx, WordMetaKey)
	if errors.Is(err, storage.ErrNotFound) {
		return map[string]WordUsage{}, nil
	}
	if err != nil {
		return nil, err
	}
	meta := map[string]WordUsage{}
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// RecordDaily stores a completed Daily run and then counts its words. The
// word counters are only touched when this call claimed the date, so a
// duplicate completion cannot count a run twice.
func (s *Store) RecordDaily(ctx context.Context, res run.Result) (DailyResult, error) {
	rec := FromRun(res)
	if err := s.SaveDaily(ctx, rec); err != nil {
		return rec, err
	}
	if err := s.IncrementWordUsage(ctx, rec.Words, rec.Date); err != nil {
		return rec, err
	}
	s.log.Info("daily result recorded", "date", rec.Date, "theme", rec.Theme, "final", rec.FinalScore)
	return rec, nil
}
