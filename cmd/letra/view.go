package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/letra/internal/platform/plain"
	"github.com/vovakirdan/letra/internal/session"
)

var viewCmd = &cobra.Command{
	Use:   "view [date]",
	Short: "Show a stored daily result",
	Long: `Show the stored daily result for a date (YYYY-MM-DD), or for today.

Examples:
  letra view
  letra view 2025-11-01`,
	Args: cobra.MaximumNArgs(1),
	Run:  runView,
}

func runView(_ *cobra.Command, args []string) {
	a := mustOpenApp(nil)
	defer a.Close()

	date := ""
	if len(args) == 1 {
		date = args[0]
	}

	ctx, stop := signalContext()
	defer stop()

	l, err := a.svc.Launch(ctx, session.Params{Mode: session.ModeView, ViewDate: date})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		a.Close()
		os.Exit(1)
	}

	if !l.Found {
		fmt.Printf("No daily result stored for %s.\n", l.Date)
		if l.Date == a.svc.Today() {
			fmt.Println()
			fmt.Println("Play 'letra play daily' to set one!")
		}
		return
	}

	plain.WriteDaily(os.Stdout, l.Daily, time.Now())
}
