package run

import "fmt"

// Mode identifies the kind of run.
type Mode string

const (
	ModeDaily    Mode = "daily"
	ModePractice Mode = "practice"
	ModeRelax    Mode = "relax"
)

// Daily runs are identical for every player on a date, so their shape is
// fixed rather than configurable.
const (
	DailyWords     = 10
	DailyTimeLimit = 60
	// DefaultTimeLimit is the countdown for timed practice runs.
	DefaultTimeLimit = 60
)

// ParseMode converts a CLI or launch-parameter value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeDaily, ModePractice, ModeRelax:
		return m, nil
	default:
		return "", fmt.Errorf("run: unknown mode %q", s)
	}
}

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDaily:
		return "Daily"
	case ModePractice:
		return "Practice"
	case ModeRelax:
		return "Relax"
	default:
		return string(m)
	}
}

// Config is fixed for the lifetime of a run.
type Config struct {
	Mode      Mode
	Timed     bool
	Theme     string // empty or "Random" means the whole catalog
	Date      string // YYYY-MM-DD, meaningful for Daily only
	TimeLimit int    // seconds; zero means DefaultTimeLimit
}

// normalized applies the mode rules: Daily is always timed with the daily
// limit, Relax never has a timer.
func (c Config) normalized() Config {
	switch c.Mode {
	case ModeDaily:
		c.Timed = true
		c.TimeLimit = DailyTimeLimit
	case ModeRelax:
		c.Timed = false
	}
	if !c.Timed {
		c.TimeLimit = 0
	} else if c.TimeLimit <= 0 {
		c.TimeLimit = DefaultTimeLimit
	}
	return c
}

// Phase is the lifecycle stage of a run.
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	Completed
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// WordStatus tracks the current word. Only Relax runs leave Guessing without
// moving to the next word.
type WordStatus int

const (
	Guessing WordStatus = iota
	Solved
	Revealed
)

// Outcome describes what an event did to the run.
type Outcome int

const (
	// Ignored means the event had no effect (wrong phase, or input blocked).
	Ignored Outcome = iota
	// Wrong means the submitted text did not match the current word.
	Wrong
	// Correct means the word was solved and the run continues.
	Correct
	// Ticked means one second elapsed and the run continues.
	Ticked
	// Finished means this event completed the run. Exactly one event per run
	// returns Finished.
	Finished
)
