package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List catalog themes",
	Long: `Show the themes of the word catalog in their declared order, with the
number of words in each. Use --catalog to inspect another word list.`,
	Args: cobra.NoArgs,
	Run:  runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	a := mustOpenApp(nil)
	defer a.Close()

	themes := a.catalog.Themes()
	if len(themes) == 0 {
		fmt.Println("The catalog has no themes.")
		return
	}

	maxLen := len("Theme")
	for _, t := range themes {
		maxLen = max(maxLen, len(t))
	}

	fmt.Println("Themes:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxLen, "Theme", "Words")
	fmt.Printf("  %-*s  %s\n", maxLen, "-----", "-----")
	for _, t := range themes {
		words, _ := a.catalog.Words(t)
		fmt.Printf("  %-*s  %d\n", maxLen, t, len(words))
	}

	fmt.Println()
	if theme, err := a.catalog.DailyTheme(a.svc.Today()); err == nil {
		fmt.Printf("Today's daily theme: %s\n", theme)
	}
	fmt.Println("Run 'letra play practice --theme <name>' to practice a theme.")
}
