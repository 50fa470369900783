package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/letra/internal/catalog"
	"github.com/vovakirdan/letra/internal/config"
	"github.com/vovakirdan/letra/internal/platform/plain"
	"github.com/vovakirdan/letra/internal/platform/tui"
	"github.com/vovakirdan/letra/internal/run"
	"github.com/vovakirdan/letra/internal/session"
)

var (
	flagTheme  string
	flagTimed  bool
	flagDate   string
	flagStart  bool
	flagWords  int
	flagTime   int
	flagPreset string
	flagPlain  bool
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Start a run",
	Long: `Start a daily, practice or relax run.

The daily run uses the same theme and ten words for everyone on a given
date and can be played once per day; playing it again shows the stored
result. Practice and relax runs pick words from a theme of your choice.

Controls:
  Type       - Answer (checked as you type, spaces and case ignored)
  Enter      - Start (daily), next word (relax)
  Tab        - Reveal the answer (relax)
  Esc        - Back to the menu
  Ctrl+C     - Quit

Timer presets (practice):
  easy    - 90 seconds
  normal  - 60 seconds
  hard    - 30 seconds
  custom  - run.time_limit from the config, or --time

Examples:
  letra play daily
  letra play daily --start
  letra play practice --theme Ocean --timed --preset hard
  letra play relax --theme Random --words 5
  letra play practice --plain < answers.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Theme to draw words from (default: whole catalog)")
	playCmd.Flags().BoolVar(&flagTimed, "timed", false, "Count down in practice runs")
	playCmd.Flags().StringVar(&flagDate, "date", "", "Daily date as YYYY-MM-DD (default: today)")
	playCmd.Flags().BoolVar(&flagStart, "start", false, "Start the daily run without waiting at the start screen")
	playCmd.Flags().IntVar(&flagWords, "words", 0, "Words per practice or relax run (default from config)")
	playCmd.Flags().IntVar(&flagTime, "time", 0, "Practice countdown in seconds (implies the custom preset)")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Practice timer preset: easy, normal, hard, custom")
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Play line by line without the full-screen UI")
}

// applyRunFlags overrides the run section of the config with play flags.
func applyRunFlags(cfg *config.Config) error {
	if flagWords > 0 {
		cfg.Run.Words = flagWords
	}
	if flagPreset != "" {
		preset, err := config.ParsePreset(flagPreset)
		if err != nil {
			return err
		}
		cfg.Run.Preset = string(preset)
	}
	if flagTime > 0 {
		cfg.Run.Preset = string(config.PresetCustom)
		cfg.Run.TimeLimit = flagTime
	}
	return nil
}

func runPlay(_ *cobra.Command, args []string) {
	mode, err := run.ParseMode(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'letra modes' to see available modes.")
		os.Exit(1)
	}

	a := mustOpenApp(applyRunFlags)
	defer a.Close()

	if flagTheme != "" && flagTheme != catalog.RandomTheme && !a.catalog.Has(flagTheme) {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", flagTheme)
		fmt.Fprintln(os.Stderr, "Run 'letra themes' to see available themes.")
		a.Close()
		os.Exit(1)
	}

	params := session.Params{
		Mode:      string(mode),
		Timed:     flagTimed,
		Theme:     flagTheme,
		Date:      flagDate,
		StartGame: flagStart,
	}

	if flagPlain || !stdinIsTerminal() {
		err = playPlain(a, params)
	} else {
		ctx, stop := signalContext()
		err = tui.Run(ctx, a.svc, runtimeConfig(), &params, a.logger)
		stop()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		a.Close()
		os.Exit(1)
	}
}

// playPlain plays one run on stdin and stdout and prints its summary.
func playPlain(a *app, p session.Params) error {
	ctx, stop := signalContext()
	defer stop()

	l, err := a.svc.Launch(ctx, p)
	if err != nil {
		return err
	}

	if l.Kind == session.KindView {
		fmt.Printf("The daily run for %s has already been played.\n\n", l.Date)
		plain.WriteDaily(os.Stdout, l.Daily, time.Now())
		return nil
	}

	d := plain.New(os.Stdin, os.Stdout, plain.WithLogger(a.logger))
	res, err := d.Play(ctx, l.Run, l.AutoStart)
	if err != nil && (errors.Is(err, plain.ErrAborted) || ctx.Err() != nil) {
		fmt.Println("\nRun abandoned; nothing was saved.")
		return nil
	}
	if err != nil {
		return err
	}

	plain.WriteRecord(os.Stdout, a.svc.Record(ctx, res))
	return nil
}
