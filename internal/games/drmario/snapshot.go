package drmario

// Snapshot is a read-only view of the game for display and comparison.
type Snapshot struct {
	Rows     int
	Cols     int
	Tokens   [][]string // Three-character render token per cell, faller included
	Faller   *Faller
	Viruses  int
	GameOver bool
	Cleared  bool
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	tokens := make([][]string, g.field.Rows)
	for row := range tokens {
		tokens[row] = make([]string, g.field.Cols)
		for col := range tokens[row] {
			tokens[row][col] = CellToken(g.field.Get(P(row, col)))
		}
	}

	if f := g.faller; f != nil {
		for i, seg := range f.Segments {
			tokens[seg.Pos.Row][seg.Pos.Col] = fallerToken(f, i)
		}
	}

	return Snapshot{
		Rows:     g.field.Rows,
		Cols:     g.field.Cols,
		Tokens:   tokens,
		Faller:   g.Faller(),
		Viruses:  g.field.CountViruses(),
		GameOver: g.gameOver,
		Cleared:  !g.HasViruses(),
	}
}

// CellToken returns the three-character rendering of a settled cell.
func CellToken(c Cell) string {
	switch c.Kind {
	case CellVirus:
		return " " + string(c.Color.LowerChar()) + " "
	case CellMarked:
		if c.WasVirus {
			return "*" + string(c.Color.LowerChar()) + "*"
		}
		return "*" + string(c.Color.Char()) + "*"
	case CellCapsule:
		ch := string(c.Color.Char())
		switch c.Half {
		case HalfLeft:
			return "|" + ch + "-"
		case HalfRight:
			return "-" + ch + "|"
		default:
			return " " + ch + " "
		}
	default:
		return "   "
	}
}

// fallerToken renders segment i of an active faller.
func fallerToken(f *Faller, i int) string {
	seg := f.Segments[i]
	ch := string(seg.Color.Char())
	if f.Orientation == Vertical {
		return "[" + ch + "]"
	}
	other := f.Segments[1-i]
	if seg.Pos.Col < other.Pos.Col {
		return "[" + ch + "-"
	}
	return "-" + ch + "]"
}
