// letra is a word-unscrambling game for the terminal.
//
// Usage:
//
//	letra                    - Open the menu
//	letra play <mode>        - Start a daily, practice or relax run
//	letra view [date]        - Show a stored daily result
//	letra calendar           - List stored daily results
//	letra words              - Show how often each daily word came up
//	letra scores [mode]      - Show the best practice or relax runs
//	letra themes             - List catalog themes
//	letra modes              - List run modes
//	letra rules              - Show how to play
//	letra serve              - Start the SSH server
//
// Global flags:
//
//	--config <path>   - Config file (YAML or TOML)
//	--db <path>       - Database path (default: ~/.letra/letra.db)
//	--catalog <path>  - Word list (JSON or YAML)
//	--verbose         - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/letra/internal/platform/tui"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagCatalog string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "letra",
	Short: "Letra - unscramble words in your terminal",
	Long: `Letra shows you scrambled words from a theme. Type the word back
before the clock runs out.

Modes:
  daily     - Same theme and ten words for everyone, once per day
  practice  - Any theme, as often as you like, timed or not
  relax     - No clock, reveal a word when stuck

Examples:
  letra
  letra play daily
  letra play practice --theme Ocean --timed
  letra play relax --theme Space
  letra calendar
  letra serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the database (default from config: ~/.letra/letra.db)")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to a word list (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(serveCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	if !stdinIsTerminal() {
		fmt.Fprintln(os.Stderr, "Error: the menu needs a terminal")
		fmt.Fprintln(os.Stderr, "Run 'letra play <mode> --plain' to play without one.")
		os.Exit(1)
	}

	a := mustOpenApp(nil)
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	if err := tui.Run(ctx, a.svc, runtimeConfig(), nil, a.logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		a.Close()
		os.Exit(1)
	}
}
