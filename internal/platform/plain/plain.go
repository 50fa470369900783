// Package plain plays runs over a line-oriented reader and writer. It is used
// when no terminal is attached, and by tests.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letra/internal/run"
)

// ErrAborted is returned when input ends before the run completes.
var ErrAborted = errors.New("plain: input closed before the run finished")

// Relax commands.
const (
	cmdReveal = "?"
	cmdQuit   = ":q"
)

// Driver plays runs on a line stream.
type Driver struct {
	out      io.Writer
	lines    <-chan string
	interval time.Duration
	logger   *log.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithInterval sets the countdown step.
func WithInterval(d time.Duration) Option {
	return func(dr *Driver) { dr.interval = d }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(dr *Driver) { dr.logger = l }
}

// New creates a Driver reading answers from in. The reader is consumed by
// a background goroutine for the lifetime of the process.
func New(in io.Reader, out io.Writer, opts ...Option) *Driver {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	d := &Driver{
		out:      out,
		lines:    lines,
		interval: time.Second,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Play runs r to completion. Without autoStart it waits for one line at the
// start gate first. The countdown runs in the background while the driver
// waits for input.
func (d *Driver) Play(ctx context.Context, r *run.Run, autoStart bool) (run.Result, error) {
	cfg := r.Config()
	d.printf("%s · %s\n", cfg.Mode, themeName(cfg.Theme))

	if !autoStart {
		if cfg.Timed {
			d.printf("%d words in %d seconds. Press enter to start.\n", len(r.Words()), cfg.TimeLimit)
		} else {
			d.printf("%d words. Press enter to start.\n", len(r.Words()))
		}
		select {
		case <-ctx.Done():
			return run.Result{}, ctx.Err()
		case _, ok := <-d.lines:
			if !ok {
				return run.Result{}, ErrAborted
			}
		}
	}

	r.Start()
	driveCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go run.Drive(driveCtx, r, d.interval)

	for {
		snap := r.Snapshot()
		if snap.Phase == run.Completed {
			break
		}
		d.prompt(snap)

		select {
		case <-ctx.Done():
			return run.Result{}, ctx.Err()
		case <-r.Done():
			if cfg.Timed {
				d.printf("\nTime's up!\n")
			}
		case line, ok := <-d.lines:
			if !ok {
				d.logger.Debug("input closed mid-run", "run", r.ID())
				return run.Result{}, ErrAborted
			}
			if strings.TrimSpace(line) == cmdQuit {
				return run.Result{}, ErrAborted
			}
			d.handle(r, snap, line)
		}
	}

	res, _ := r.Result()
	return res, nil
}

func (d *Driver) handle(r *run.Run, snap run.Snapshot, line string) {
	if snap.Config.Mode == run.ModeRelax {
		if snap.Status != run.Guessing {
			r.Advance()
			return
		}
		if strings.TrimSpace(line) == cmdReveal {
			if r.Reveal() {
				d.printf("  answer: %s (enter for the next word)\n", r.Snapshot().Answer)
			}
			return
		}
	}

	switch r.Submit(line) {
	case run.Wrong:
		if s := r.Snapshot(); s.Close {
			d.printf("  so close!\n")
		} else {
			d.printf("  no\n")
		}
	case run.Correct:
		if snap.Config.Mode == run.ModeRelax {
			d.printf("  correct! (enter for the next word)\n")
		} else {
			d.printf("  correct!\n")
		}
	case run.Finished:
		d.printf("  correct!\n")
	}
}

func (d *Driver) prompt(s run.Snapshot) {
	if s.Status != run.Guessing {
		return
	}
	head := fmt.Sprintf("[%d/%d] score %d", s.Index+1, s.Total, s.Score)
	if s.Config.Timed {
		head += fmt.Sprintf(" · %ds", s.TimeLeft)
	}
	d.printf("%s  %s\n> ", head, s.Scrambled)
}

func (d *Driver) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

func themeName(t string) string {
	if t == "" {
		return "Random"
	}
	return t
}
