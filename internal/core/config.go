package core

import "time"

// RuntimeConfig contains terminal and clock settings passed to the platform
// layer when a screen is created.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Countdown tick period (one second in play)
	Now          func() time.Time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: time.Second,
		Now:          time.Now,
	}
}

// Today formats the current local date as YYYY-MM-DD.
func (c RuntimeConfig) Today() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return DateString(now())
}

// DateString formats t as a zero-padded YYYY-MM-DD calendar date in t's
// location.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
