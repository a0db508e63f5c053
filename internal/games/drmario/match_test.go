package drmario

import (
	"reflect"
	"testing"
)

// fieldFrom builds a field from compact rows: '.' empty, r/b/y viruses,
// R/B/Y single capsules.
func fieldFrom(t *testing.T, rows ...string) *Field {
	t.Helper()
	f := NewField(len(rows), len(rows[0]))
	for r, line := range rows {
		for c, ch := range line {
			if ch == '.' {
				continue
			}
			cell, ok := parseContentCell(ch)
			if !ok {
				t.Fatalf("bad cell %q", ch)
			}
			f.Set(P(r, c), cell)
		}
	}
	return f
}

func TestFindMatches(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		rules Rules
		want  []Pos
	}{
		{
			name:  "horizontal",
			rows:  []string{"....", "RrR.", "BYBY"},
			rules: DefaultRules(),
			want:  []Pos{P(1, 0), P(1, 1), P(1, 2)},
		},
		{
			name:  "vertical",
			rows:  []string{"..b.", "..B.", "..b."},
			rules: DefaultRules(),
			want:  []Pos{P(0, 2), P(1, 2), P(2, 2)},
		},
		{
			name:  "diagonal down right",
			rows:  []string{"y...", ".Y..", "..y."},
			rules: DefaultRules(),
			want:  []Pos{P(0, 0), P(1, 1), P(2, 2)},
		},
		{
			name:  "diagonal down left",
			rows:  []string{"...R", "..R.", ".R.."},
			rules: DefaultRules(),
			want:  []Pos{P(0, 3), P(1, 2), P(2, 1)},
		},
		{
			name:  "diagonal ignored when disabled",
			rows:  []string{"y...", ".Y..", "..y."},
			rules: Rules{MinRun: 3},
			want:  nil,
		},
		{
			name:  "run too short",
			rows:  []string{"....", "RR.R", "...."},
			rules: DefaultRules(),
			want:  nil,
		},
		{
			name:  "four needed",
			rows:  []string{"....", "bbb.", "YYYY"},
			rules: Rules{MinRun: 4},
			want:  []Pos{P(2, 0), P(2, 1), P(2, 2), P(2, 3)},
		},
		{
			name:  "overlapping runs merged",
			rows:  []string{"R...", "R...", "RRR."},
			rules: DefaultRules(),
			want:  []Pos{P(0, 0), P(1, 0), P(2, 0), P(2, 1), P(2, 2)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := fieldFrom(t, tc.rows...)
			got := FindMatches(f, tc.rules)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("FindMatches() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMarkedCellsDoNotMatch(t *testing.T) {
	f := fieldFrom(t, "...", "...", "RRR", "BBY")
	if n := MarkMatches(f, DefaultRules()); n != 3 {
		t.Fatalf("MarkMatches() = %d, want 3", n)
	}
	if n := MarkMatches(f, DefaultRules()); n != 0 {
		t.Errorf("marked cells matched again: %d", n)
	}
	for col := 0; col < 3; col++ {
		if c := f.Get(P(2, col)); c.Kind != CellMarked || c.WasVirus {
			t.Errorf("cell (2,%d) = %+v, want marked capsule", col, c)
		}
	}
}
