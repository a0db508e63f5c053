// Package tui provides the Bubble Tea front-end for drmario.
// Key presses map to engine calls. Gravity advances on a timer only when
// RuntimeConfig.TickRate is set.
package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/drmario/internal/core"
	"github.com/vovakirdan/drmario/internal/driver"
	"github.com/vovakirdan/drmario/internal/games/drmario"
)

// GameSource builds a fresh game. It is called at start and on restart.
type GameSource func(rng *rand.Rand) (*drmario.Game, error)

// Model is the Bubble Tea model for a drmario session.
type Model struct {
	source   GameSource
	title    string
	game     *drmario.Game
	next     [2]drmario.Color
	rng      *rand.Rand
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	err      error
	quitting bool
}

// NewModel creates a model and builds the first game.
func NewModel(source GameSource, title string, cfg core.RuntimeConfig) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		source: source,
		title:  title,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		screen: core.NewScreen(max(cfg.ScreenW, 0), max(cfg.ScreenH-helpHeight, 0)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.help.Width = cfg.ScreenW
	if err := m.reset(); err != nil {
		return m, err
	}
	return m, nil
}

const helpHeight = 4

// reset builds a new game and spawns its first faller.
func (m *Model) reset() error {
	g, err := m.source(m.rng)
	if err != nil {
		return err
	}
	m.game = g
	m.next = m.rollColors()
	m.spawn()
	return nil
}

func (m *Model) rollColors() [2]drmario.Color {
	n := int(drmario.ColorCount)
	return [2]drmario.Color{drmario.Color(m.rng.Intn(n)), drmario.Color(m.rng.Intn(n))}
}

// spawn releases the queued colors as a new faller and queues the next pair.
func (m *Model) spawn() {
	if m.game.GameOver() || m.game.Cleared() {
		return
	}
	m.game.CreateFaller(m.next[0], m.next[1])
	m.next = m.rollColors()
}

// Game returns the current game.
func (m Model) Game() *drmario.Game {
	return m.game
}

// Init initializes the model and starts the gravity timer, if any.
func (m Model) Init() tea.Cmd {
	if m.config.TickRate > 0 {
		return tickCmd(m.config.TickRate)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case TickMsg:
		if m.quitting || m.config.TickRate <= 0 {
			return m, nil
		}
		m.step()
		return m, tickCmd(m.config.TickRate)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleAction applies one action to the game.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	g := m.game
	switch a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionRestart:
		if err := m.reset(); err != nil {
			m.err = err
			return m, tea.Quit
		}
	case core.ActionLeft:
		g.MoveFaller(drmario.Left)
	case core.ActionRight:
		g.MoveFaller(drmario.Right)
	case core.ActionRotateCW:
		g.RotateFaller(drmario.Clockwise)
	case core.ActionRotateCCW:
		g.RotateFaller(drmario.CounterClockwise)
	case core.ActionStep:
		m.step()
	case core.ActionDrop:
		for i := 0; i <= g.Rows() && g.HasFaller(); i++ {
			g.ApplyGravityStep()
		}
	}
	return m, nil
}

// step advances one gravity step. Once the field has settled after a
// landing, the next faller is spawned.
func (m *Model) step() {
	if m.game.HasFaller() {
		m.game.ApplyGravityStep()
		return
	}
	if !m.game.ApplyGravityStep() {
		m.spawn()
	}
}

// status returns the end-of-game line, if any.
func (m Model) status() string {
	switch {
	case m.game.Cleared():
		return driver.LevelCleared
	case m.game.GameOver():
		return driver.GameOver
	default:
		return ""
	}
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	drawBoard(m.screen, m.game.Field(), m.game.Faller(), panelInfo{
		Title:  m.title,
		Rules:  m.game.Rules().String(),
		Next:   m.next,
		Status: m.status(),
	})

	return titleStyle.Render("DR. MARIO") + "\n" +
		RenderScreen(m.screen) + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a game source.
func Run(source GameSource, title string, cfg core.RuntimeConfig) error {
	model, err := NewModel(source, title, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
