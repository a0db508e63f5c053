package drmario

import (
	"strings"
)

// RenderASCII draws a snapshot as bordered rows, three characters per
// column, followed by a footer line:
//
//	|            |
//	|   |R--Y|   |
//	 ------------
func RenderASCII(s Snapshot) string {
	var sb strings.Builder
	sb.Grow((s.Cols*3 + 3) * (s.Rows + 1))

	for _, row := range s.Tokens {
		sb.WriteByte('|')
		for _, tok := range row {
			sb.WriteString(tok)
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(Footer(s.Cols))
	sb.WriteByte('\n')
	return sb.String()
}

// Footer returns the line drawn under the field.
func Footer(cols int) string {
	return " " + strings.Repeat("-", cols*3) + " "
}

// RenderCompact renders the settled cells one character per column, for
// test assertions: '.' empty, lower-case virus, upper-case capsule, '*' marked.
func RenderCompact(f *Field) string {
	var sb strings.Builder
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			c := f.Get(P(row, col))
			switch c.Kind {
			case CellVirus:
				sb.WriteRune(c.Color.LowerChar())
			case CellCapsule:
				sb.WriteRune(c.Color.Char())
			case CellMarked:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
