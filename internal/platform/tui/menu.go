package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/drmario/internal/core"
	"github.com/vovakirdan/drmario/internal/levels"
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items    []levels.Level
	table    table.Model
	width    int
	height   int
	config   core.RuntimeConfig
	quitting bool
	selected *levels.Level // Set when user selects a level
}

// NewMenuModel creates a new level picker.
func NewMenuModel(items []levels.Level, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the level table sized to the current window.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 20},
		{Title: "Size", Width: 7},
		{Title: "Rules", Width: 8},
		{Title: "Viruses", Width: 7},
	}

	// Give the name column whatever the window leaves over
	fixed := 7 + 8 + 7 + 8 // Other columns + cell padding
	columns[0].Width = core.Clamp(m.width-4-fixed, 20, 32)

	rows := make([]table.Row, len(m.items))
	for i, l := range m.items {
		name := l.Name
		if name == "" {
			name = l.ID
		}
		rules := l.Rules
		if rules == "" {
			rules = "-"
		}
		rows[i] = table.Row{
			name,
			fmt.Sprintf("%dx%d", l.Rows, l.Cols),
			rules,
			fmt.Sprintf("%d", len(l.Viruses)),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(m.height-10, 3, max(len(rows), 3))), // Leave room for title, notes and help
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
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.table.MoveUp(1)

	case MenuActionDown:
		m.table.MoveDown(1)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := *m.highlighted()
			m.selected = &selected
			return m, tea.Quit
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
	b.WriteString(centerText(titleStyle.Render("DR. MARIO"), m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No levels found", m.width))
		b.WriteString("\n")
	} else {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View())
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box))
		b.WriteString("\n")
		if notes := m.highlighted().Notes(); notes != "" {
			b.WriteString(centerText(helpStyle.Render(notes), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("↑/↓: Navigate  |  Enter: Play  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// highlighted returns the level under the cursor. The menu must not be empty.
func (m MenuModel) highlighted() *levels.Level {
	return &m.items[core.Clamp(m.table.Cursor(), 0, len(m.items)-1)]
}

// Cursor returns the index of the highlighted level.
func (m MenuModel) Cursor() int {
	return m.table.Cursor()
}

// Selected returns the selected level, or nil if none was selected.
func (m MenuModel) Selected() *levels.Level {
	return m.selected
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu runs the level picker. It returns nil when the user quits.
func RunMenu(items []levels.Level, cfg core.RuntimeConfig) (*levels.Level, core.RuntimeConfig, error) {
	p := tea.NewProgram(NewMenuModel(items, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return nil, cfg, nil
	}
	return m.Selected(), m.Config(), nil
}
