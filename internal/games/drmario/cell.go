package drmario

// CellKind discriminates the variants a field cell can hold.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellVirus
	CellCapsule
	CellMarked // Matched this step, cleared at the start of the next
)

// Half records which side of a landed horizontal pair a capsule cell was.
type Half uint8

const (
	HalfNone Half = iota
	HalfLeft
	HalfRight
)

// Cell is a single field cell.
//
// Color is meaningful for every kind except CellEmpty. Half is only set on
// capsules. WasVirus is only set on marked cells and remembers what was
// matched, so a marked virus still counts as a virus until it is cleared.
type Cell struct {
	Kind     CellKind
	Color    Color
	Half     Half
	WasVirus bool
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{Kind: CellEmpty}
}

// Virus returns a virus cell of the given color.
func Virus(c Color) Cell {
	return Cell{Kind: CellVirus, Color: c}
}

// Capsule returns a landed capsule segment.
func Capsule(c Color, h Half) Cell {
	return Cell{Kind: CellCapsule, Color: c, Half: h}
}

// IsEmpty reports whether the cell holds nothing.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// IsLive reports whether the cell takes part in matching and gravity.
func (c Cell) IsLive() bool {
	return c.Kind == CellVirus || c.Kind == CellCapsule
}

// IsVirus reports whether the cell is a virus, marked or not.
func (c Cell) IsVirus() bool {
	return c.Kind == CellVirus || (c.Kind == CellMarked && c.WasVirus)
}

// Mark returns the marked form of a live cell.
func (c Cell) Mark() Cell {
	return Cell{Kind: CellMarked, Color: c.Color, WasVirus: c.Kind == CellVirus}
}

// Single drops any pairing tag.
func (c Cell) Single() Cell {
	c.Half = HalfNone
	return c
}
