package drmario

// Orientation is the layout of the faller's two segments.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Direction is a sideways move.
type Direction int8

const (
	Left  Direction = -1
	Right Direction = 1
)

// Rotation is a rotation direction.
type Rotation uint8

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// Segment is one half of a faller.
type Segment struct {
	Pos   Pos
	Color Color
}

// Faller is the piece under player control.
// Segments[0] always sits one cell away from Segments[1], in one of the four
// orthogonal directions.
type Faller struct {
	Segments    [2]Segment
	Orientation Orientation
	Landed      bool
}

// offset returns the first segment's position relative to the pivot.
func (f *Faller) offset() Pos {
	a, b := f.Segments[0].Pos, f.Segments[1].Pos
	return P(a.Row-b.Row, a.Col-b.Col)
}

// translated returns the faller's segment positions shifted by (dr, dc).
func (f *Faller) translated(dr, dc int) [2]Pos {
	return [2]Pos{
		f.Segments[0].Pos.Add(dr, dc),
		f.Segments[1].Pos.Add(dr, dc),
	}
}

// Occupies reports whether either segment is at p.
func (f *Faller) Occupies(p Pos) bool {
	return f.Segments[0].Pos == p || f.Segments[1].Pos == p
}

// turn is one entry of the rotation table: where the pivot moves and where
// the first segment ends up relative to it.
type turn struct {
	shift  Pos
	offset Pos
}

// rotationTable is keyed by the first segment's offset from the pivot.
// A quarter turn keeps the piece's bottom-left cell in place, so standing a
// horizontal piece up never reaches below its row, and two turns in the
// same direction swap the colours left to right.
var rotationTable = map[Rotation]map[Pos]turn{
	Clockwise: {
		P(0, -1): {shift: P(0, -1), offset: P(-1, 0)},
		P(-1, 0): {shift: P(0, 0), offset: P(0, 1)},
		P(0, 1):  {shift: P(-1, 0), offset: P(1, 0)},
		P(1, 0):  {shift: P(1, 1), offset: P(0, -1)},
	},
	CounterClockwise: {
		P(-1, 0): {shift: P(0, 1), offset: P(0, -1)},
		P(0, 1):  {shift: P(0, 0), offset: P(-1, 0)},
		P(1, 0):  {shift: P(1, 0), offset: P(0, 1)},
		P(0, -1): {shift: P(-1, -1), offset: P(1, 0)},
	},
}

// kickTable lists the shifts tried, in order, when a rotation is blocked.
var kickTable = map[Rotation][]Pos{
	Clockwise:        {P(0, -1), P(0, 1), P(1, 0)},
	CounterClockwise: {P(0, 1), P(0, -1), P(1, 0)},
}

// rotated returns segment positions after a quarter turn shifted by kick,
// plus the resulting orientation.
func (f *Faller) rotated(rot Rotation, kick Pos) ([2]Pos, Orientation) {
	t := rotationTable[rot][f.offset()]
	pivot := f.Segments[1].Pos.Add(t.shift.Row+kick.Row, t.shift.Col+kick.Col)
	orient := Horizontal
	if t.offset.Col == 0 {
		orient = Vertical
	}
	return [2]Pos{pivot.Add(t.offset.Row, t.offset.Col), pivot}, orient
}

func (f *Faller) place(ps [2]Pos) {
	f.Segments[0].Pos = ps[0]
	f.Segments[1].Pos = ps[1]
}

// spawnPositions returns where a new faller appears: row 1, with the pivot
// on the middle column (the left of the two centre columns on even widths)
// and the first segment to its left.
func spawnPositions(cols int) [2]Pos {
	pivotCol := (cols - 1) / 2
	return [2]Pos{P(1, pivotCol-1), P(1, pivotCol)}
}

// canOccupy reports whether every position is in bounds and empty.
func (g *Game) canOccupy(ps [2]Pos) bool {
	for _, p := range ps {
		if !g.field.IsFree(p) {
			return false
		}
	}
	return true
}

// activeFaller returns the faller if it can still be controlled.
func (g *Game) activeFaller() *Faller {
	if g.faller == nil || g.faller.Landed {
		return nil
	}
	return g.faller
}

// MoveFaller shifts the faller one column. Blocked moves are ignored.
func (g *Game) MoveFaller(dir Direction) {
	f := g.activeFaller()
	if f == nil {
		return
	}
	if dir != Left && dir != Right {
		return
	}
	target := f.translated(0, int(dir))
	if g.canOccupy(target) {
		f.place(target)
	}
}

// RotateFaller turns the faller a quarter turn about its bottom-left cell.
// If the rotated piece does not fit, the kick offsets for that direction are
// tried in order; if none fit the faller is left unchanged.
func (g *Game) RotateFaller(rot Rotation) {
	f := g.activeFaller()
	if f == nil {
		return
	}
	kicks, ok := kickTable[rot]
	if !ok {
		return
	}

	candidates := append([]Pos{P(0, 0)}, kicks...)
	for _, kick := range candidates {
		target, orient := f.rotated(rot, kick)
		if g.canOccupy(target) {
			f.place(target)
			f.Orientation = orient
			return
		}
	}
}

// dropFaller moves the faller down one row, or lands it when blocked.
// Returns true if the faller moved or landed.
func (g *Game) dropFaller() bool {
	f := g.activeFaller()
	if f == nil {
		return false
	}
	target := f.translated(1, 0)
	if g.canOccupy(target) {
		f.place(target)
		return true
	}
	g.landFaller()
	return true
}

// landFaller writes the faller into the field and removes it.
// Horizontal pieces remember their pairing; vertical pieces land as singles.
func (g *Game) landFaller() {
	f := g.faller
	f.Landed = true

	a, b := f.Segments[0], f.Segments[1]
	if f.Orientation == Horizontal {
		if a.Pos.Col > b.Pos.Col {
			a, b = b, a
		}
		g.field.Set(a.Pos, Capsule(a.Color, HalfLeft))
		g.field.Set(b.Pos, Capsule(b.Color, HalfRight))
	} else {
		g.field.Set(a.Pos, Capsule(a.Color, HalfNone))
		g.field.Set(b.Pos, Capsule(b.Color, HalfNone))
	}
	g.faller = nil
}
