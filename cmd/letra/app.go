package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/letra/internal/catalog"
	"github.com/vovakirdan/letra/internal/config"
	"github.com/vovakirdan/letra/internal/core"
	"github.com/vovakirdan/letra/internal/results"
	"github.com/vovakirdan/letra/internal/session"
	"github.com/vovakirdan/letra/internal/storage"
)

// app holds everything a command needs to play or inspect runs.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	catalog *catalog.Catalog
	store   *storage.Store // nil when the database could not be opened
	svc     *session.Service
}

// openApp loads the config, applies the global flags and adjust, then opens
// the catalog and the database. A database that cannot be opened is not
// fatal: results are kept in memory for this process only.
func openApp(adjust func(*config.Config) error) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagCatalog != "" {
		cfg.Catalog.Path = flagCatalog
	}
	if adjust != nil {
		if err := adjust(&cfg); err != nil {
			return nil, err
		}
	}

	logger := newLogger(cfg.Log.Level)

	cat, err := catalog.Load(config.ExpandHome(cfg.Catalog.Path))
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, catalog: cat}

	var kv storage.KV
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open database, results will not be kept", "path", cfg.Storage.Path, "error", err)
		kv = storage.NewMemory()
	} else {
		a.store = store
		kv = store
	}

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithSettings(session.Settings{Words: cfg.Run.Words, TimeLimit: cfg.TimeLimit()}),
	}
	if a.store != nil {
		opts = append(opts, session.WithScoreboard(a.store))
	}
	a.svc = session.New(cat, results.New(kv, logger), opts...)

	logger.Debug("app ready", "db", cfg.Storage.Path, "themes", cat.Len(), "words", cfg.Run.Words, "time_limit", cfg.TimeLimit())
	return a, nil
}

// mustOpenApp is openApp that exits on failure.
func mustOpenApp(adjust func(*config.Config) error) *app {
	a, err := openApp(adjust)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return a
}

// Close releases the database. It is safe to call more than once.
func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
		a.store = nil
	}
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "letra",
	})
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.WarnLevel
	}
	if flagVerbose {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// runtimeConfig sizes the first frame to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
