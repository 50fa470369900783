package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed rules.md
var rulesMarkdown string

var flagRulesRaw bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show how to play",
	Args:  cobra.NoArgs,
	Run:   runRules,
}

func init() {
	rulesCmd.Flags().BoolVar(&flagRulesRaw, "raw", false, "Print the markdown source")
}

func runRules(_ *cobra.Command, _ []string) {
	if flagRulesRaw {
		fmt.Print(rulesMarkdown)
		return
	}

	width := min(runtimeConfig().ScreenW, 100)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-2),
	)
	if err != nil {
		fmt.Print(rulesMarkdown)
		return
	}

	out, err := renderer.Render(rulesMarkdown)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering rules: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}
