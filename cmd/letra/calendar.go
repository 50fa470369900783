package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "List stored daily results",
	Long: `List every stored daily result, newest first.

Use 'letra view <date>' to see the words of a day.`,
	Args: cobra.NoArgs,
	Run:  runCalendar,
}

func runCalendar(_ *cobra.Command, _ []string) {
	a := mustOpenApp(nil)
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	days := a.svc.Calendar(ctx)
	if len(days) == 0 {
		fmt.Println("No daily results yet.")
		fmt.Println()
		fmt.Println("Play 'letra play daily' to start your calendar!")
		return
	}

	fmt.Println("Daily results")
	fmt.Println()

	maxTheme := len("Theme")
	for _, d := range days {
		maxTheme = max(maxTheme, len(d.Theme))
	}

	fmt.Printf("  %-10s  %-*s  %-6s  %-5s  %-5s  %s\n", "Date", maxTheme, "Theme", "Solved", "Bonus", "Final", "Played")
	fmt.Printf("  %-10s  %-*s  %-6s  %-5s  %-5s  %s\n", "----", maxTheme, "-----", "------", "-----", "-----", "------")

	now := time.Now()
	for _, d := range days {
		solved := fmt.Sprintf("%d/%d", d.Score, len(d.Words))
		fmt.Printf("  %-10s  %-*s  %-6s  %-5d  %-5d  %s\n",
			d.Date, maxTheme, d.Theme, solved, d.TimeLeft, d.FinalScore,
			humanize.RelTime(d.CreatedAt(), now, "ago", "from now"))
	}

	fmt.Println()
	fmt.Printf("%s played\n", english.Plural(len(days), "day", ""))
}
