package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/letra/internal/registry"
	"github.com/vovakirdan/letra/internal/run"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best practice or relax runs",
	Long: `Display the top 10 practice or relax runs (practice by default).
Daily results are listed by 'letra calendar'.

Examples:
  letra scores
  letra scores relax`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	mode := string(run.ModePractice)
	if len(args) == 1 {
		mode = args[0]
	}

	info, err := registry.Lookup(mode)
	if err != nil || mode == string(run.ModeDaily) {
		fmt.Fprintf(os.Stderr, "Error: no scoreboard for mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Scoreboards exist for practice and relax.")
		os.Exit(1)
	}

	a := mustOpenApp(nil)
	defer a.Close()
	if a.store == nil {
		fmt.Fprintln(os.Stderr, "Error: scores database is unavailable")
		a.Close()
		os.Exit(1)
	}

	ctx, stop := signalContext()
	defer stop()

	scores, err := a.svc.TopScores(ctx, mode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		a.Close()
		os.Exit(1)
	}

	fmt.Printf("Best runs - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'letra play %s' to set the first one!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-12s  %-5s  %s\n", "Rank", "Score", "Theme", "Words", "Date")
	fmt.Printf("  %-4s  %-6s  %-12s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		theme := entry.Theme
		if theme == "" {
			theme = "Random"
		}
		fmt.Printf("  %-4d  %-6d  %-12s  %-5d  %s\n", i+1, entry.Score, theme, entry.Words, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
