package drmario

// axis is a scan direction; runs are gathered along it both ways.
type axis struct{ dr, dc int }

var (
	orthogonalAxes = []axis{{0, 1}, {1, 0}}
	diagonalAxes   = []axis{{1, 1}, {1, -1}}
)

func (r Rules) axes() []axis {
	if r.Diagonals {
		return append(append([]axis{}, orthogonalAxes...), diagonalAxes...)
	}
	return orthogonalAxes
}

// FindMatches returns every live cell that belongs to a same-colored run of
// at least rules.MinRun cells. Overlapping runs are merged, so each position
// appears once. Positions are ordered top-to-bottom, left-to-right.
func FindMatches(f *Field, rules Rules) []Pos {
	hit := make([]bool, len(f.Cells))
	axes := rules.axes()

	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			start := P(row, col)
			cell := f.Get(start)
			if !cell.IsLive() {
				continue
			}
			for _, ax := range axes {
				run := f.runAlong(start, cell.Color, ax)
				if len(run) < rules.MinRun {
					continue
				}
				for _, p := range run {
					hit[f.index(p)] = true
				}
			}
		}
	}

	var matches []Pos
	for i, h := range hit {
		if h {
			matches = append(matches, P(i/f.Cols, i%f.Cols))
		}
	}
	return matches
}

// runAlong collects the contiguous live cells of color c through start,
// scanning both ways along ax.
func (f *Field) runAlong(start Pos, c Color, ax axis) []Pos {
	run := []Pos{start}
	for _, sign := range []int{-1, 1} {
		p := start.Add(sign*ax.dr, sign*ax.dc)
		for f.InBounds(p) {
			cell := f.Get(p)
			if !cell.IsLive() || cell.Color != c {
				break
			}
			run = append(run, p)
			p = p.Add(sign*ax.dr, sign*ax.dc)
		}
	}
	return run
}

// MarkMatches flags every matched cell for removal.
// Returns the number of cells marked.
func MarkMatches(f *Field, rules Rules) int {
	matches := FindMatches(f, rules)
	for _, p := range matches {
		f.Set(p, f.Get(p).Mark())
	}
	return len(matches)
}
