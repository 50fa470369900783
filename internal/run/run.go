// Package run implements the state machine for one playthrough of a word
// list: progression, scoring, the optional countdown and completion.
//
// A Run is safe for concurrent use. Tick and Submit are serialised by a
// mutex, so whichever event is processed first decides a last-second race,
// and completion happens exactly once.
package run

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/letra/internal/puzzle"
)

// Result is the terminal snapshot of a run, enough to render a summary
// without recomputation.
type Result struct {
	RunID       string
	Mode        Mode
	Theme       string
	Date        string
	Words       []string
	Timed       bool
	Score       int
	TimeLeft    int
	FinalScore  int
	CompletedAt time.Time
}

// Snapshot is a read-only view of a run for rendering.
type Snapshot struct {
	ID         string
	Config     Config
	Phase      Phase
	Status     WordStatus
	Index      int
	Total      int
	Word       string // current target, shown only once solved or revealed
	Scrambled  string
	Answer     string
	Close      bool
	Score      int
	TimeLeft   int
	FinalScore int // valid when Phase == Completed
}

// Option configures a Run.
type Option func(*Run)

// WithScrambler sets the scrambler used for prompts.
func WithScrambler(s *puzzle.Scrambler) Option {
	return func(r *Run) { r.scrambler = s }
}

// WithClock sets the clock used to stamp results.
func WithClock(now func() time.Time) Option {
	return func(r *Run) { r.now = now }
}

// OnComplete registers fn to receive the result. It is called exactly once,
// from the goroutine whose event completed the run, after the lock is
// released.
func OnComplete(fn func(Result)) Option {
	return func(r *Run) { r.onComplete = append(r.onComplete, fn) }
}

// Run is one playthrough. Create it with New and begin it with Start.
type Run struct {
	mu sync.Mutex

	id         string
	cfg        Config
	words      []string
	scrambler  *puzzle.Scrambler
	now        func() time.Time
	onComplete []func(Result)

	phase      Phase
	status     WordStatus
	index      int
	score      int
	timeLeft   int
	finalScore int
	scrambled  string
	answer     string
	close      bool

	result Result
	done   chan struct{}
}

// New creates a run over words. The word list is copied.
func New(cfg Config, words []string, opts ...Option) *Run {
	r := &Run{
		id:    uuid.NewString(),
		cfg:   cfg.normalized(),
		words: slices.Clone(words),
		now:   time.Now,
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.scrambler == nil {
		r.scrambler = puzzle.NewScrambler(nil)
	}
	r.timeLeft = r.cfg.TimeLimit
	return r
}

// ID returns the run id.
func (r *Run) ID() string { return r.id }

// Config returns the normalized run configuration.
func (r *Run) Config() Config { return r.cfg }

// Words returns a copy of the run's word list.
func (r *Run) Words() []string { return slices.Clone(r.words) }

// Start moves the run from NotStarted to InProgress and renders the first
// prompt. A run with no words completes immediately with a zero score.
// It reports whether this call started the run.
func (r *Run) Start() bool {
	r.mu.Lock()
	if r.phase != NotStarted {
		r.mu.Unlock()
		return false
	}
	r.phase = InProgress
	r.index = 0
	r.score = 0
	r.timeLeft = r.cfg.TimeLimit
	if len(r.words) == 0 {
		r.timeLeft = 0
		res := r.completeLocked(0)
		r.mu.Unlock()
		r.notify(res)
		return true
	}
	r.loadWordLocked()
	r.mu.Unlock()
	return true
}

// Tick counts down one second on a timed run. When the clock reaches zero
// the run completes with the current score and no bonus.
func (r *Run) Tick() Outcome {
	r.mu.Lock()
	if r.phase != InProgress || !r.cfg.Timed {
		r.mu.Unlock()
		return Ignored
	}
	if r.timeLeft > 0 {
		r.timeLeft--
	}
	if r.timeLeft > 0 {
		r.mu.Unlock()
		return Ticked
	}
	res := r.completeLocked(r.score)
	r.mu.Unlock()
	r.notify(res)
	return Finished
}

// Submit judges text against the current word. A mismatch only records the
// uppercased text as the visible answer. A match scores a point and either
// loads the next word, waits for Advance (Relax), or completes the run.
func (r *Run) Submit(text string) Outcome {
	r.mu.Lock()
	if r.phase != InProgress || r.index >= len(r.words) || r.status != Guessing {
		r.mu.Unlock()
		return Ignored
	}

	target := r.words[r.index]
	if !puzzle.Matches(text, target) {
		r.answer = strings.ToUpper(text)
		r.close = puzzle.Close(text, target)
		r.mu.Unlock()
		return Wrong
	}

	r.score++
	r.close = false

	if r.cfg.Mode == ModeRelax {
		r.status = Solved
		r.answer = strings.ToUpper(target)
		r.mu.Unlock()
		return Correct
	}

	if r.index+1 < len(r.words) {
		r.index++
		r.loadWordLocked()
		r.mu.Unlock()
		return Correct
	}

	final := r.score
	if r.cfg.Timed {
		final += r.timeLeft
	}
	res := r.completeLocked(final)
	r.mu.Unlock()
	r.notify(res)
	return Finished
}

// Reveal shows the current answer in a Relax run and blocks further input
// for that word until Advance. It reports whether anything changed.
func (r *Run) Reveal() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cfg.Mode != ModeRelax || r.phase != InProgress || r.status != Guessing {
		return false
	}
	r.status = Revealed
	r.answer = strings.ToUpper(r.words[r.index])
	r.close = false
	return true
}

// Advance moves a Relax run past a solved or revealed word. Advancing past
// the last word completes the run with the plain score.
func (r *Run) Advance() Outcome {
	r.mu.Lock()
	if r.cfg.Mode != ModeRelax || r.phase != InProgress || r.status == Guessing {
		r.mu.Unlock()
		return Ignored
	}
	if r.index+1 < len(r.words) {
		r.index++
		r.loadWordLocked()
		r.mu.Unlock()
		return Correct
	}
	res := r.completeLocked(r.score)
	r.mu.Unlock()
	r.notify(res)
	return Finished
}

// Snapshot returns the current state.
func (r *Run) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := Snapshot{
		ID:         r.id,
		Config:     r.cfg,
		Phase:      r.phase,
		Status:     r.status,
		Index:      r.index,
		Total:      len(r.words),
		Scrambled:  r.scrambled,
		Answer:     r.answer,
		Close:      r.close,
		Score:      r.score,
		TimeLeft:   r.timeLeft,
		FinalScore: r.finalScore,
	}
	if r.status != Guessing && r.index < len(r.words) {
		s.Word = r.words[r.index]
	}
	return s
}

// Result returns the final result once the run has completed.
func (r *Run) Result() (Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != Completed {
		return Result{}, false
	}
	res := r.result
	res.Words = slices.Clone(res.Words)
	return res, true
}

// Done returns a channel that is closed when the run completes.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

func (r *Run) loadWordLocked() {
	r.status = Guessing
	r.answer = ""
	r.close = false
	r.scrambled = r.scrambler.Scramble(r.words[r.index])
}

// completeLocked must be called with mu held and phase == InProgress.
func (r *Run) completeLocked(final int) Result {
	r.phase = Completed
	r.finalScore = final
	timeLeft := 0
	if r.cfg.Timed {
		timeLeft = r.timeLeft
	}
	r.result = Result{
		RunID:       r.id,
		Mode:        r.cfg.Mode,
		Theme:       r.cfg.Theme,
		Date:        r.cfg.Date,
		Words:       slices.Clone(r.words),
		Timed:       r.cfg.Timed,
		Score:       r.score,
		TimeLeft:    timeLeft,
		FinalScore:  final,
		CompletedAt: r.now(),
	}
	close(r.done)
	return r.result
}

func (r *Run) notify(res Result) {
	for _, fn := range r.onComplete {
		fn(res)
	}
}
