package tui

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/drmario/internal/core"
	"github.com/vovakirdan/drmario/internal/games/drmario"
	"github.com/vovakirdan/drmario/internal/levels"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"a", runeKey('a'), core.ActionRotateCW},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW},
		{"b", runeKey('b'), core.ActionRotateCCW},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionStep},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStep},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDrop},
		{"r", runeKey('r'), core.ActionRestart},
		{"?", runeKey('?'), core.ActionHelp},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func fixedSource(contents ...string) GameSource {
	return func(*rand.Rand) (*drmario.Game, error) {
		return drmario.New(len(contents), 4, contents)
	}
}

func newTestModel(t *testing.T, source GameSource) Model {
	t.Helper()
	m, err := NewModel(source, "test", core.RuntimeConfig{ScreenW: 60, ScreenH: 24, Seed: 1})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelSpawnsAndMoves(t *testing.T) {
	m := newTestModel(t, fixedSource("", "", "", "", "", "   b"))

	f := m.Game().Faller()
	if f == nil {
		t.Fatal("expected a faller after start")
	}
	if f.Segments[0].Pos != drmario.P(1, 0) {
		t.Errorf("faller spawned at %v, expected (1,0)", f.Segments[0].Pos)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Game().Faller().Segments[0].Pos; got != drmario.P(1, 1) {
		t.Errorf("after right, faller at %v, expected (1,1)", got)
	}

	m, _ = press(t, m, runeKey('a'))
	if m.Game().Faller().Orientation != drmario.Vertical {
		t.Error("rotate should make the faller vertical")
	}
}

func TestModelDropThenSpawnsNext(t *testing.T) {
	m := newTestModel(t, fixedSource("", "", "", "", "", "   b"))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Game().HasFaller() {
		t.Fatal("drop should land the faller")
	}
	if m.Game().Field().LiveCount() != 3 {
		t.Errorf("expected landed pair plus virus, got %d live cells", m.Game().Field().LiveCount())
	}

	for i := 0; i < 5 && !m.Game().HasFaller() && !m.Game().Cleared(); i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if !m.Game().HasFaller() && !m.Game().Cleared() {
		t.Error("stepping a settled field should spawn the next faller")
	}
}

func TestModelTick(t *testing.T) {
	m := newTestModel(t, fixedSource("", "", "", "", "", "   b"))
	if m.Init() != nil {
		t.Error("no timer should run without a tick rate")
	}
	start := m.Game().Faller().Segments[0].Pos

	_, cmd := press(t, m, TickMsg(time.Now()))
	if cmd != nil {
		t.Error("ticks should be ignored without a tick rate")
	}

	m, err := NewModel(fixedSource("", "", "", "", "", "   b"), "test",
		core.RuntimeConfig{ScreenW: 60, ScreenH: 24, TickRate: 5, Seed: 1})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	if m.Init() == nil {
		t.Error("a tick rate should start the timer")
	}
	m, cmd = press(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("a tick should schedule the next one")
	}
	if got := m.Game().Faller().Segments[0].Pos; got != start.Add(1, 0) {
		t.Errorf("after tick, faller at %v, expected %v", got, start.Add(1, 0))
	}
}

func TestModelRestartAndQuit(t *testing.T) {
	m := newTestModel(t, fixedSource("", "", "", "   b"))
	first := m.Game()

	m, _ = press(t, m, runeKey('r'))
	if m.Game() == first {
		t.Error("restart should build a new game")
	}

	m, cmd := press(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelSourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewModel(func(*rand.Rand) (*drmario.Game, error) { return nil, boom },
		"broken", core.DefaultConfig())
	if !errors.Is(err, boom) {
		t.Errorf("NewModel error = %v, expected boom", err)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, fixedSource("", "", "", "", "", "   b"))

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 70, Height: 30})
	if m.screen.Width() != 70 || m.screen.Height() != 30-helpHeight {
		t.Errorf("screen = %dx%d after resize", m.screen.Width(), m.screen.Height())
	}

	view := m.View()
	for _, want := range []string{"DR. MARIO", "Viruses: 1", "runs of 3+, diagonals", "left"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelShowsStatus(t *testing.T) {
	m := newTestModel(t, fixedSource("", "", "", ""))
	if m.Game().HasFaller() {
		t.Error("a cleared level should not spawn")
	}
	if !strings.Contains(m.View(), "LEVEL CLEARED") {
		t.Error("expected LEVEL CLEARED in view")
	}

	m = newTestModel(t, fixedSource("", " r", "", "   b"))
	if !m.Game().GameOver() {
		t.Fatal("blocked spawn should end the game")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("expected GAME OVER in view")
	}
}

func TestDrawBoard(t *testing.T) {
	s := core.NewScreen(40, 10)
	f := drmario.NewField(4, 3)
	f.Set(drmario.P(3, 2), drmario.Virus(drmario.ColorBlue))
	f.Set(drmario.P(3, 0), drmario.Capsule(drmario.ColorRed, drmario.HalfLeft))
	f.Set(drmario.P(3, 1), drmario.Capsule(drmario.ColorRed, drmario.HalfRight))

	drawBoard(s, f, nil, panelInfo{Title: "t"})

	// 28x8 board centered in 40x10 starts at (6, 1)
	if s.Get(6, 1) != '┌' {
		t.Errorf("box corner = %q, expected '┌'", s.Get(6, 1))
	}
	if got := string([]rune(s.Row(5))[7:13]); got != "(==){}" {
		t.Errorf("bottom field row = %q, expected \"(==){}\"", got)
	}
	if c := s.GetCell(11, 5); c.Color != core.ColorBlue {
		t.Errorf("virus color = %v, expected blue", c.Color)
	}
	if !strings.Contains(s.String(), "Viruses: 1") {
		t.Error("panel should show the virus count")
	}
}

func TestMenuModel(t *testing.T) {
	items := []levels.Level{
		{ID: "a", Name: "First", Rows: 8, Cols: 4},
		{ID: "b", Name: "Second", Rows: 8, Cols: 4, Metadata: map[string]string{"hint": "stack blues"}},
	}
	var m tea.Model = NewMenuModel(items, core.DefaultConfig())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.(MenuModel).Cursor(); got != 1 {
		t.Errorf("cursor = %d, expected 1 (the second level)", got)
	}
	if !strings.Contains(m.View(), "Second") {
		t.Errorf("view should list the second level:\n%s", m.View())
	}
	if !strings.Contains(m.View(), "hint: stack blues") {
		t.Errorf("view should show the highlighted level's notes:\n%s", m.View())
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should quit the menu")
	}
	sel := m.(MenuModel).Selected()
	if sel == nil || sel.ID != "b" {
		t.Errorf("selected = %+v, expected level b", sel)
	}
}

func TestMenuModelQuit(t *testing.T) {
	var m tea.Model = NewMenuModel(nil, core.DefaultConfig())
	if !strings.Contains(m.View(), "No levels found") {
		t.Errorf("empty menu should say so:\n%s", m.View())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.(MenuModel).Selected() != nil {
		t.Error("select on an empty menu should pick nothing")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit the menu")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
