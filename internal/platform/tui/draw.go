package tui

import (
	"fmt"

	"github.com/vovakirdan/drmario/internal/core"
	"github.com/vovakirdan/drmario/internal/games/drmario"
)

// Layout constants
const (
	cellWidth  = 2  // Screen columns per field column
	panelGap   = 2  // Space between the field box and the side panel
	panelWidth = 18 // Side panel width
)

// pieceColor maps an engine color to a screen color.
func pieceColor(c drmario.Color) core.Color {
	switch c {
	case drmario.ColorRed:
		return core.ColorRed
	case drmario.ColorBlue:
		return core.ColorBlue
	case drmario.ColorYellow:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

// cellGlyph returns the two characters drawn for a settled cell.
func cellGlyph(c drmario.Cell) string {
	switch c.Kind {
	case drmario.CellVirus:
		return "{}"
	case drmario.CellMarked:
		return "**"
	case drmario.CellCapsule:
		switch c.Half {
		case drmario.HalfLeft:
			return "(="
		case drmario.HalfRight:
			return "=)"
		default:
			return "()"
		}
	default:
		return "  "
	}
}

// boardSize returns the screen size of the field box plus side panel.
func boardSize(rows, cols int) (w, h int) {
	return cols*cellWidth + 2 + panelGap + panelWidth, max(rows+2, 8)
}

// panelInfo is the text shown beside the field.
type panelInfo struct {
	Title  string
	Rules  string
	Next   [2]drmario.Color
	Status string
}

// drawBoard draws the field, the faller and the side panel centered on dst.
func drawBoard(dst *core.Screen, f *drmario.Field, fl *drmario.Faller, info panelInfo) {
	w, h := boardSize(f.Rows, f.Cols)
	area := dst.Bounds().Centered(w, h)
	box := core.NewRect(area.X, area.Y, f.Cols*cellWidth+2, f.Rows+2)
	dst.DrawBox(box, core.ColorGray)

	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			c := f.Get(drmario.P(row, col))
			color := pieceColor(c.Color)
			if c.Kind == drmario.CellMarked {
				color = color.Bright()
			}
			dst.DrawText(box.X+1+col*cellWidth, box.Y+1+row, cellGlyph(c), color)
		}
	}

	if fl != nil {
		for i, seg := range fl.Segments {
			glyph := "()"
			if fl.Orientation == drmario.Horizontal {
				if seg.Pos.Col < fl.Segments[1-i].Pos.Col {
					glyph = "(="
				} else {
					glyph = "=)"
				}
			}
			x := box.X + 1 + seg.Pos.Col*cellWidth
			dst.DrawText(x, box.Y+1+seg.Pos.Row, glyph, pieceColor(seg.Color).Bright())
		}
	}

	px := box.Right() + panelGap
	py := box.Y
	dst.DrawText(px, py, info.Title, core.ColorWhite)
	dst.DrawText(px, py+1, info.Rules, core.ColorGray)
	dst.DrawText(px, py+3, fmt.Sprintf("Viruses: %d", f.CountViruses()), core.ColorWhite)
	dst.DrawText(px, py+5, "Next:", core.ColorGray)
	dst.DrawText(px+6, py+5, "(=", pieceColor(info.Next[0]))
	dst.DrawText(px+8, py+5, "=)", pieceColor(info.Next[1]))
	if info.Status != "" {
		dst.DrawText(px, py+7, info.Status, core.ColorBrightYellow)
	}
}
