package drmario

import "fmt"

// Field dimension limits.
const (
	MinRows = 4
	MinCols = 3
	MaxRows = 256
	MaxCols = 256
)

// Rules selects the matching variant for a session.
type Rules struct {
	MinRun    int  // Minimum run length that clears
	Diagonals bool // Whether diagonal runs clear too
}

// DefaultRules returns the classic rule set: runs of three, diagonals included.
func DefaultRules() Rules {
	return Rules{MinRun: 3, Diagonals: true}
}

// Validate checks that the rules can produce sensible matches.
func (r Rules) Validate() error {
	if r.MinRun < 2 {
		return fmt.Errorf("min run must be at least 2, got %d", r.MinRun)
	}
	return nil
}

// String returns a short description of the rule set.
func (r Rules) String() string {
	if r.Diagonals {
		return fmt.Sprintf("runs of %d+, diagonals", r.MinRun)
	}
	return fmt.Sprintf("runs of %d+, orthogonal", r.MinRun)
}
