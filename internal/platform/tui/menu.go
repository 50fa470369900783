package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/letra/internal/core"
	"github.com/vovakirdan/letra/internal/registry"
	"github.com/vovakirdan/letra/internal/run"
)

// MenuTarget says what a menu entry opens.
type MenuTarget int

const (
	TargetMode MenuTarget = iota
	TargetCalendar
	TargetWords
	TargetScores
	TargetQuit
)

// MenuItem represents a selectable entry in the main menu.
type MenuItem struct {
	Target MenuTarget
	ModeID string // TargetMode only
	Title  string
	Desc   string
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	styles      Styles
	today       string
	dailyPlayed bool
	quitting    bool
	selected    *MenuItem
}

// NewMenuModel creates a new menu model. Modes come from the registry,
// followed by the history screens.
func NewMenuModel(cfg core.RuntimeConfig, today string, dailyPlayed bool) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, 0, len(modes)+4)
	for _, m := range modes {
		items = append(items, MenuItem{
			Target: TargetMode,
			ModeID: m.ID,
			Title:  m.Title,
			Desc:   m.Description,
		})
	}
	items = append(items,
		MenuItem{Target: TargetCalendar, Title: "Calendar", Desc: "Past daily results"},
		MenuItem{Target: TargetWords, Title: "Word History", Desc: "How often each daily word came up"},
		MenuItem{Target: TargetScores, Title: "Scores", Desc: "Best practice and relax runs"},
		MenuItem{Target: TargetQuit, Title: "Quit"},
	)

	return MenuModel{
		items:       items,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
		styles:      DefaultStyles(),
		today:       today,
		dailyPlayed: dailyPlayed,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			if selected.Target == TargetQuit {
				m.quitting = true
				return m, nil
			}
			m.selected = &selected
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerBlock(m.styles.Title.Render("L E T R A"), m.width))
	b.WriteString("\n")
	b.WriteString(centerBlock(m.styles.Subtitle.Render("unscramble the words"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		label := item.Title
		if item.ModeID == string(run.ModeDaily) {
			label = fmt.Sprintf("%s  %s", label, m.today)
			if m.dailyPlayed {
				label += "  " + m.styles.ItemDone.Render("played")
			}
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
	if m.cursor < len(m.items) && m.items[m.cursor].Desc != "" {
		b.WriteString(centerBlock(m.styles.Desc.Render(m.items[m.cursor].Desc), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(m.styles.Help.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
