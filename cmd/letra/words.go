package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagWordsLimit int

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show how often each daily word came up",
	Long: `Show the word usage recorded by daily runs: how many times each
word was served and on which dates, most used first.`,
	Args: cobra.NoArgs,
	Run:  runWords,
}

func init() {
	wordsCmd.Flags().IntVarP(&flagWordsLimit, "limit", "n", 0, "Show at most this many words (0 = all)")
}

func runWords(_ *cobra.Command, _ []string) {
	a := mustOpenApp(nil)
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	rows := a.svc.WordUsage(ctx)
	if len(rows) == 0 {
		fmt.Println("No daily words recorded yet.")
		return
	}
	if flagWordsLimit > 0 && len(rows) > flagWordsLimit {
		rows = rows[:flagWordsLimit]
	}

	maxWord := len("Word")
	for _, r := range rows {
		maxWord = max(maxWord, len(r.Word))
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxWord, "Word", "Count", "Dates")
	fmt.Printf("  %-*s  %-5s  %s\n", maxWord, "----", "-----", "-----")
	for _, r := range rows {
		fmt.Printf("  %-*s  %-5d  %s\n", maxWord, strings.ToUpper(r.Word), r.Count, strings.Join(r.Dates, ", "))
	}
}
