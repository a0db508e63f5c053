package drmario

import (
	"math/rand"
)

// Game is the engine for a single session: the field, the active faller and
// the game-over flag. It is not safe for concurrent use; every method runs
// to completion on the caller's goroutine.
type Game struct {
	field    *Field
	faller   *Faller
	rules    Rules
	gameOver bool
}

// New creates a game using the classic rules.
// See NewWithRules for the meaning of contents.
func New(rows, cols int, contents []string) (*Game, error) {
	return NewWithRules(rows, cols, contents, DefaultRules())
}

// ValidateDimensions reports whether a rows x cols field is within
// MinRows..MaxRows and MinCols..MaxCols.
func ValidateDimensions(rows, cols int) error {
	if rows < MinRows || cols < MinCols {
		return newError(KindInvalidDimensions,
			"field must be at least %dx%d, got %dx%d", MinRows, MinCols, rows, cols)
	}
	if rows > MaxRows || cols > MaxCols {
		return newError(KindInvalidDimensions,
			"field must be at most %dx%d, got %dx%d", MaxRows, MaxCols, rows, cols)
	}
	return nil
}

// NewWithRules creates a game with the given dimensions and rules.
//
// contents is optional. When given it must have exactly rows lines, none
// longer than cols; short lines are padded with empty cells. Characters are
// ' ' for empty, r/b/y for viruses and R/B/Y for single capsule segments.
func NewWithRules(rows, cols int, contents []string, rules Rules) (*Game, error) {
	if err := ValidateDimensions(rows, cols); err != nil {
		return nil, err
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		field: NewField(rows, cols),
		rules: rules,
	}
	if contents == nil {
		return g, nil
	}

	if len(contents) != rows {
		return nil, newError(KindInvalidDimensions, "expected %d content rows, got %d", rows, len(contents))
	}
	for row, line := range contents {
		if len(line) > cols {
			return nil, newError(KindInvalidDimensions,
				"content row %d has %d columns, field has %d", row, len(line), cols)
		}
		for col, ch := range line {
			cell, ok := parseContentCell(ch)
			if !ok {
				return nil, newError(KindInvalidContents, "unexpected %q at %v", ch, P(row, col))
			}
			g.field.Set(P(row, col), cell)
		}
	}
	return g, nil
}

func parseContentCell(ch rune) (Cell, bool) {
	if ch == ' ' {
		return Empty(), true
	}
	c, ok := ParseColor(string(ch))
	if !ok {
		return Cell{}, false
	}
	if ch >= 'a' && ch <= 'z' {
		return Virus(c), true
	}
	return Capsule(c, HalfNone), true
}

// Rows returns the field height.
func (g *Game) Rows() int {
	return g.field.Rows
}

// Cols returns the field width.
func (g *Game) Cols() int {
	return g.field.Cols
}

// Rules returns the rule set the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}

// Field returns a copy of the settled field, without the faller.
func (g *Game) Field() *Field {
	return g.field.Clone()
}

// Faller returns a copy of the current faller, or nil if there is none.
func (g *Game) Faller() *Faller {
	if g.faller == nil {
		return nil
	}
	f := *g.faller
	return &f
}

// HasFaller reports whether a faller is in play.
func (g *Game) HasFaller() bool {
	return g.faller != nil
}

// GameOver reports whether a spawn was blocked.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// HasViruses reports whether any virus remains, including viruses that are
// marked but not yet cleared.
func (g *Game) HasViruses() bool {
	for _, c := range g.field.Cells {
		if c.IsVirus() {
			return true
		}
	}
	return false
}

// Cleared reports whether the level has no viruses left.
func (g *Game) Cleared() bool {
	return !g.HasViruses()
}

// Spawn creates a horizontal faller at the top of the field.
// A blocked spawn cell ends the game.
func (g *Game) Spawn(a, b Color) error {
	if g.gameOver {
		return ErrGameOver
	}
	if g.faller != nil {
		return ErrFallerActive
	}
	if !a.Valid() || !b.Valid() {
		return newError(KindInvalidColor, "faller colors %d, %d", a, b)
	}

	ps := spawnPositions(g.field.Cols)
	if !g.canOccupy(ps) {
		g.gameOver = true
		return newError(KindSpawnBlocked, "spawn cells %v %v occupied", ps[0], ps[1])
	}

	g.faller = &Faller{
		Segments: [2]Segment{
			{Pos: ps[0], Color: a},
			{Pos: ps[1], Color: b},
		},
		Orientation: Horizontal,
	}
	return nil
}

// CreateFaller is Spawn reporting success as a bool.
func (g *Game) CreateFaller(a, b Color) bool {
	return g.Spawn(a, b) == nil
}

// AddVirus places a virus on an empty cell.
func (g *Game) AddVirus(row, col int, c Color) error {
	p := P(row, col)
	if !g.field.InBounds(p) {
		return newError(KindOutOfBounds, "%v outside %dx%d field", p, g.field.Rows, g.field.Cols)
	}
	if !c.Valid() {
		return newError(KindInvalidColor, "virus color %d", c)
	}
	if !g.field.Get(p).IsEmpty() || (g.faller != nil && g.faller.Occupies(p)) {
		return newError(KindCellOccupied, "%v is not empty", p)
	}
	g.field.Set(p, Virus(c))
	return nil
}

// ApplyGravityStep advances the game by one time step:
//
//  1. cells marked on the previous step are cleared;
//  2. the faller drops one row, or lands and is written into the field;
//  3. the field settles and new runs are marked.
//
// Marks stay visible until the next step, which also drops whatever they
// were holding up. Returns whether anything changed.
func (g *Game) ApplyGravityStep() bool {
	if g.gameOver {
		return false
	}

	changed := g.field.ClearMarked() > 0
	if g.dropFaller() {
		changed = true
	}

	var held []Pos
	if f := g.activeFaller(); f != nil {
		held = []Pos{f.Segments[0].Pos, f.Segments[1].Pos}
	}

	// Bounded: every iteration that continues has moved a cell downward.
	for pass := 0; pass < g.field.Rows*g.field.Cols; pass++ {
		moved := g.field.ApplyGravityAround(held)
		marked := MarkMatches(g.field, g.rules) > 0
		if moved || marked {
			changed = true
		}
		if marked || !moved {
			break
		}
	}
	return changed
}

// Settle steps the game until nothing changes, including dropping and
// landing any active faller. Returns the number of productive steps.
func (g *Game) Settle() int {
	limit := g.field.Rows*g.field.Cols + g.field.Rows
	steps := 0
	for steps < limit && g.ApplyGravityStep() {
		steps++
	}
	return steps
}

// PlaceRandomViruses scatters up to n viruses over the lower part of the
// field, never creating a ready-made run. Returns how many were placed.
func (g *Game) PlaceRandomViruses(n int, rng *rand.Rand) int {
	top := max(g.field.Rows/3, 2)
	placed := 0
	for attempts := 0; placed < n && attempts < n*20; attempts++ {
		p := P(top+rng.Intn(g.field.Rows-top), rng.Intn(g.field.Cols))
		c := AllColors()[rng.Intn(int(ColorCount))]
		if g.AddVirus(p.Row, p.Col, c) != nil {
			continue
		}
		if g.completesRun(p) {
			g.field.Set(p, Empty())
			continue
		}
		placed++
	}
	return placed
}

func (g *Game) completesRun(p Pos) bool {
	for _, m := range FindMatches(g.field, g.rules) {
		if m == p {
			return true
		}
	}
	return false
}
