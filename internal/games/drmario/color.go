package drmario

import "strings"

// Color is the color of a virus or capsule segment.
type Color uint8

const (
	ColorRed Color = iota
	ColorBlue
	ColorYellow
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the playable colors.
func (c Color) Valid() bool {
	return c < ColorCount
}

// Char returns the upper-case letter used for capsules.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	default:
		return '?'
	}
}

// LowerChar returns the lower-case letter used for viruses.
func (c Color) LowerChar() rune {
	switch c {
	case ColorRed:
		return 'r'
	case ColorBlue:
		return 'b'
	case ColorYellow:
		return 'y'
	default:
		return '?'
	}
}

// ParseColor converts a color name or letter to a Color, ignoring case.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	default:
		return ColorRed, false
	}
}

// AllColors returns a slice of all valid colors.
func AllColors() []Color {
	return []Color{ColorRed, ColorBlue, ColorYellow}
}
