package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/letra/internal/registry"
)

// ThemePickerModel lets the player choose a theme before a practice or relax
// run. Modes with a timer option can toggle it here.
type ThemePickerModel struct {
	info      registry.Info
	themes    []string
	counts    map[string]int
	cursor    int
	timed     bool
	width     int
	height    int
	keyMapper *KeyMapper
	styles    Styles

	selected   bool
	backToMenu bool
	quitting   bool
}

// NewThemePickerModel creates a picker for the given mode. themes is the list
// to show, Random included; counts holds the word count of each theme.
func NewThemePickerModel(info registry.Info, themes []string, counts map[string]int, width, height int) ThemePickerModel {
	return ThemePickerModel{
		info:      info,
		themes:    themes,
		counts:    counts,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		styles:    DefaultStyles(),
		timed:     info.Timer,
	}
}

// Init initializes the picker.
func (m ThemePickerModel) Init() tea.Cmd {
	return nil
}

// Update handles input.
func (m ThemePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
		case MenuActionBack:
			m.backToMenu = true
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.themes)-1 {
				m.cursor++
			}
		case MenuActionToggle:
			if m.info.Timer {
				m.timed = !m.timed
			}
		case MenuActionSelect:
			if len(m.themes) > 0 {
				m.selected = true
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the picker.
func (m ThemePickerModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerBlock(m.styles.Title.Render(strings.ToUpper(m.info.Title)), m.width))
	b.WriteString("\n")
	b.WriteString(centerBlock(m.styles.Subtitle.Render("Choose a theme"), m.width))
	b.WriteString("\n\n")

	for i, t := range m.themes {
		label := t
		if n, ok := m.counts[t]; ok {
			label = fmt.Sprintf("%s (%d)", t, n)
		}
		cursor := "  "
		style := m.styles.ItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.styles.ItemActive
		}
		b.WriteString(centerBlock(cursor+style.Render(label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Enter: Play  |  Esc: Back"
	if m.info.Timer {
		timer := "off"
		if m.timed {
			timer = "on"
		}
		b.WriteString(centerBlock(m.styles.HUDLabel.Render("Timer: ")+m.styles.HUDValue.Render(timer), m.width))
		b.WriteString("\n\n")
		controls = "Enter: Play  |  T: Toggle timer  |  Esc: Back"
	}
	b.WriteString(m.styles.Help.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected reports whether a theme was chosen.
func (m ThemePickerModel) Selected() bool {
	return m.selected
}

// Theme returns the highlighted theme.
func (m ThemePickerModel) Theme() string {
	if len(m.themes) == 0 {
		return ""
	}
	return m.themes[m.cursor]
}

// Timed reports whether the timer is on.
func (m ThemePickerModel) Timed() bool {
	return m.timed
}

// BackToMenu returns true if user wants to go back.
func (m ThemePickerModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit.
func (m ThemePickerModel) IsQuitting() bool {
	return m.quitting
}
