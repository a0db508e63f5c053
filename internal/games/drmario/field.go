package drmario

import (
	"fmt"
	"slices"
)

// Pos is a field coordinate. Row 0 is the top row.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p offset by (dr, dc).
func (p Pos) Add(dr, dc int) Pos {
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Field is the grid of settled cells.
// Cells are stored in row-major order: index = row*Cols + col.
type Field struct {
	Rows  int
	Cols  int
	Cells []Cell
}

// NewField creates an empty field.
func NewField(rows, cols int) *Field {
	return &Field{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
}

func (f *Field) index(p Pos) int {
	return p.Row*f.Cols + p.Col
}

// InBounds returns true if the position is inside the field.
func (f *Field) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < f.Rows && p.Col >= 0 && p.Col < f.Cols
}

// Get returns the cell at p. Out-of-bounds positions read as empty.
func (f *Field) Get(p Pos) Cell {
	if !f.InBounds(p) {
		return Empty()
	}
	return f.Cells[f.index(p)]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (f *Field) Set(p Pos, c Cell) {
	if f.InBounds(p) {
		f.Cells[f.index(p)] = c
	}
}

// IsFree reports whether p is inside the field and empty.
func (f *Field) IsFree(p Pos) bool {
	return f.InBounds(p) && f.Get(p).IsEmpty()
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	cells := make([]Cell, len(f.Cells))
	copy(cells, f.Cells)
	return &Field{Rows: f.Rows, Cols: f.Cols, Cells: cells}
}

// Equal returns true if two fields have the same dimensions and contents.
func (f *Field) Equal(other *Field) bool {
	if f.Rows != other.Rows || f.Cols != other.Cols {
		return false
	}
	for i, c := range f.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// CountViruses returns the number of virus cells, including marked ones.
func (f *Field) CountViruses() int {
	n := 0
	for _, c := range f.Cells {
		if c.IsVirus() {
			n++
		}
	}
	return n
}

// LiveCount returns the number of viruses and capsule segments.
func (f *Field) LiveCount() int {
	n := 0
	for _, c := range f.Cells {
		if c.IsLive() {
			n++
		}
	}
	return n
}

// freeBelow returns how many empty cells lie directly beneath p, stopping
// at any position in held.
func (f *Field) freeBelow(p Pos, held []Pos) int {
	n := 0
	for {
		q := p.Add(n+1, 0)
		if !f.IsFree(q) || slices.Contains(held, q) {
			return n
		}
		n++
	}
}

// ApplyGravity drops unsupported capsule segments until nothing moves.
// Viruses and marked cells stay put and hold up whatever rests on them.
// A left half drops together with its right partner, by the smaller of the
// two columns' free distance, so the pair stays on one row.
// Returns whether anything moved.
func (f *Field) ApplyGravity() bool {
	return f.ApplyGravityAround(nil)
}

// ApplyGravityAround is ApplyGravity with the positions in held treated as
// occupied. The game passes the active faller's segments so nothing falls
// into them.
func (f *Field) ApplyGravityAround(held []Pos) bool {
	moved := false
	// Each productive pass settles at least the lowest floating cell, so
	// Rows passes always suffice.
	for pass := 0; pass < f.Rows; pass++ {
		if !f.gravityPass(held) {
			break
		}
		moved = true
	}
	return moved
}

// gravityPass walks bottom-to-top, right-to-left so cells below are already
// settled when a cell is considered.
func (f *Field) gravityPass(held []Pos) bool {
	moved := false
	for row := f.Rows - 2; row >= 0; row-- {
		for col := f.Cols - 1; col >= 0; col-- {
			p := P(row, col)
			cell := f.Get(p)
			if cell.Kind != CellCapsule {
				continue
			}

			switch cell.Half {
			case HalfRight:
				// Moved together with its left partner, unless orphaned.
				if f.Get(p.Add(0, -1)).isPairedLeft() {
					continue
				}
				if f.dropSingle(p, held) {
					moved = true
				}
			case HalfLeft:
				if f.Get(p.Add(0, 1)).isPairedRight() {
					if f.dropPair(p, held) {
						moved = true
					}
					continue
				}
				if f.dropSingle(p, held) {
					moved = true
				}
			default:
				if f.dropSingle(p, held) {
					moved = true
				}
			}
		}
	}
	return moved
}

func (f *Field) dropSingle(p Pos, held []Pos) bool {
	dist := f.freeBelow(p, held)
	if dist == 0 {
		return false
	}
	f.Set(p.Add(dist, 0), f.Get(p))
	f.Set(p, Empty())
	return true
}

func (f *Field) dropPair(left Pos, held []Pos) bool {
	right := left.Add(0, 1)
	dist := min(f.freeBelow(left, held), f.freeBelow(right, held))
	if dist == 0 {
		return false
	}
	f.Set(left.Add(dist, 0), f.Get(left))
	f.Set(right.Add(dist, 0), f.Get(right))
	f.Set(left, Empty())
	f.Set(right, Empty())
	return true
}

func (c Cell) isPairedLeft() bool {
	return c.Kind == CellCapsule && c.Half == HalfLeft
}

func (c Cell) isPairedRight() bool {
	return c.Kind == CellCapsule && c.Half == HalfRight
}

// ClearMarked empties every marked cell and turns any pair half that lost
// its partner into a single. Returns the number of cells cleared.
func (f *Field) ClearMarked() int {
	cleared := 0
	for i, c := range f.Cells {
		if c.Kind != CellMarked {
			continue
		}
		f.Cells[i] = Empty()
		cleared++
	}
	if cleared > 0 {
		f.unpairOrphans()
	}
	return cleared
}

func (f *Field) unpairOrphans() {
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			p := P(row, col)
			c := f.Get(p)
			if c.Kind != CellCapsule {
				continue
			}
			switch {
			case c.Half == HalfLeft && !f.Get(p.Add(0, 1)).isPairedRight():
				f.Set(p, c.Single())
			case c.Half == HalfRight && !f.Get(p.Add(0, -1)).isPairedLeft():
				f.Set(p, c.Single())
			}
		}
	}
}
