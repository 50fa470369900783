package run

import (
	"context"
	"time"
)

// Drive ticks r every interval until the run completes or ctx is cancelled,
// whichever comes first. The ticker is stopped on every exit path. Drive
// returns immediately for untimed runs.
func Drive(ctx context.Context, r *Run, interval time.Duration) {
	if !r.Config().Timed {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.Done():
			return
		case <-ticker.C:
			if r.Tick() == Finished {
				return
			}
		}
	}
}
