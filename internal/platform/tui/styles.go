package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Styles contains the visual styles shared by all screens.
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	ItemNormal lipgloss.Style
	ItemActive lipgloss.Style
	ItemDone   lipgloss.Style
	Desc       lipgloss.Style
	Help       lipgloss.Style

	Tile       lipgloss.Style
	TileSolved lipgloss.Style
	Answer     lipgloss.Style
	Correct    lipgloss.Style
	Close      lipgloss.Style
	Warning    lipgloss.Style

	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style
	BarFull  lipgloss.Style
	BarEmpty lipgloss.Style
	TimeLow  lipgloss.Style

	Box lipgloss.Style
}

// DefaultStyles returns the default visual theme.
func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Subtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		ItemDone:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // Leaf green, like the played daily pill
		Desc:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Tile: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("222")). // Warm paper
			Padding(0, 1),
		TileSolved: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("78")).
			Padding(0, 1),
		Answer:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Correct: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		Close:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		BarFull:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")), // Sky blue
		BarEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		TimeLow:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2),
	}
}

// centerText centers text within given width, measured in terminal cells.
func centerText(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a rendered block.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// progressBar renders a fixed-width bar for done out of total.
func progressBar(s Styles, done, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	filled = min(max(filled, 0), width)
	return s.BarFull.Render(strings.Repeat("█", filled)) +
		s.BarEmpty.Render(strings.Repeat("░", width-filled))
}

// letterTiles renders a scrambled word as one tile per letter, keeping the
// gaps between terms.
func letterTiles(style lipgloss.Style, scrambled string) string {
	var parts []string
	for _, r := range scrambled {
		if r == ' ' {
			parts = append(parts, "   ")
			continue
		}
		parts = append(parts, style.Render(string(r)))
	}
	return strings.Join(parts, " ")
}

// newTable creates a focused table with the shared header and selection
// styles.
func newTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// emptyNotice renders the placeholder shown when a table has no rows.
func emptyNotice(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4).
		Render(text)
}
