package drmario

import "testing"

func TestCellToken(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{Empty(), "   "},
		{Virus(ColorRed), " r "},
		{Capsule(ColorBlue, HalfNone), " B "},
		{Capsule(ColorRed, HalfLeft), "|R-"},
		{Capsule(ColorYellow, HalfRight), "-Y|"},
		{Capsule(ColorYellow, HalfLeft).Mark(), "*Y*"},
		{Virus(ColorBlue).Mark(), "*b*"},
	}

	for _, tc := range tests {
		if got := CellToken(tc.cell); got != tc.want {
			t.Errorf("CellToken(%+v) = %q, want %q", tc.cell, got, tc.want)
		}
	}
}

func TestRenderASCII(t *testing.T) {
	g := mustNew(t, 4, 4, nil)
	g.CreateFaller(ColorRed, ColorYellow)

	want := "|            |\n" +
		"|[R--Y]      |\n" +
		"|            |\n" +
		"|            |\n" +
		" ------------ \n"
	if got := RenderASCII(g.Snapshot()); got != want {
		t.Errorf("spawned faller:\n%s\nwant\n%s", got, want)
	}

	g.RotateFaller(Clockwise)
	want = "|[R]         |\n" +
		"|[Y]         |\n" +
		"|            |\n" +
		"|            |\n" +
		" ------------ \n"
	if got := RenderASCII(g.Snapshot()); got != want {
		t.Errorf("vertical faller:\n%s\nwant\n%s", got, want)
	}

	g.Settle()
	want = "|            |\n" +
		"|            |\n" +
		"| R          |\n" +
		"| Y          |\n" +
		" ------------ \n"
	if got := RenderASCII(g.Snapshot()); got != want {
		t.Errorf("landed faller:\n%s\nwant\n%s", got, want)
	}
}

func TestRenderLandedPair(t *testing.T) {
	g := mustNew(t, 4, 4, nil)
	g.CreateFaller(ColorRed, ColorYellow)
	g.Settle()

	snap := g.Snapshot()
	if snap.Faller != nil {
		t.Fatal("snapshot still has a faller")
	}
	if got := RenderASCII(snap); got != "|            |\n|            |\n|            |\n||R--Y|      |\n ------------ \n" {
		t.Errorf("landed pair:\n%s", got)
	}
	if !snap.Cleared || snap.Viruses != 0 {
		t.Errorf("snapshot Cleared=%v Viruses=%d, want true 0", snap.Cleared, snap.Viruses)
	}
}

func TestFooter(t *testing.T) {
	if got := Footer(3); got != " --------- " {
		t.Errorf("Footer(3) = %q", got)
	}
}
