package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/drmario/internal/games/drmario"
)

// frame assembles the expected output for one field, four columns wide
// unless the rows say otherwise.
func frame(rows ...string) string {
	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(r + "\n")
	}
	width := len(rows[0]) - 2
	sb.WriteString(" " + strings.Repeat("-", width) + " \n")
	return sb.String()
}

const empty4 = "|            |"

func run(t *testing.T, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := New(&out, drmario.DefaultRules(), nil).Run(strings.NewReader(input))
	return out.String(), err
}

func TestLandingScenario(t *testing.T) {
	out, err := run(t, "4\n4\nEMPTY\nF R Y\n\n\n\n")
	require.NoError(t, err)

	want := frame(empty4, empty4, empty4, empty4) + LevelCleared + "\n" +
		frame(empty4, "|[R--Y]      |", empty4, empty4) + LevelCleared + "\n" +
		frame(empty4, empty4, "|[R--Y]      |", empty4) + LevelCleared + "\n" +
		frame(empty4, empty4, empty4, "|[R--Y]      |") + LevelCleared + "\n" +
		frame(empty4, empty4, empty4, "||R--Y|      |") + LevelCleared + "\n"
	assert.Equal(t, want, out)
}

func TestVirusBridgeScenario(t *testing.T) {
	input := strings.Join([]string{
		"4", "5", "CONTENTS",
		"     ",
		"     ",
		" BY  ",
		"YBYBY",
		"V 1 0 r",
		"V 1 3 r",
		"F R R",
		"",
		"",
	}, "\n") + "\n"

	out, err := run(t, input)
	require.NoError(t, err)

	frames := strings.SplitAfter(out, " --------------- \n")
	// Initial, two viruses, spawn, two ticks; status lines trail the footer
	// so the last element holds only the final status.
	require.Len(t, frames, 7)

	marked := "|               |\n" +
		"|*r**R**R**r*   |\n" +
		"|    B  Y       |\n" +
		"| Y  B  Y  B  Y |\n"
	assert.True(t, strings.HasSuffix(frames[4], marked+" --------------- \n"), "marked frame:\n%s", frames[4])
	assert.False(t, strings.HasPrefix(frames[5], LevelCleared), "marked viruses still count")

	cleared := "|               |\n" +
		"|               |\n" +
		"|    B  Y       |\n" +
		"| Y  B  Y  B  Y |\n"
	assert.True(t, strings.HasSuffix(frames[5], cleared+" --------------- \n"), "cleared frame:\n%s", frames[5])
	assert.Equal(t, LevelCleared+"\n", frames[6])
}

func TestQuitStopsOutput(t *testing.T) {
	out, err := run(t, "4\n4\nEMPTY\nq\nF R Y\n")
	require.NoError(t, err)
	assert.Equal(t, frame(empty4, empty4, empty4, empty4)+LevelCleared+"\n", out)
}

func TestGameOverEndsSession(t *testing.T) {
	out, err := run(t, "4\n4\nCONTENTS\n\n y\n\n\nF R B\nF R B\n")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(out, GameOver+"\n"))
	assert.Equal(t, 1, strings.Count(out, GameOver))
	assert.Equal(t, 2, strings.Count(out, " ------------ \n"))
	assert.NotContains(t, out, LevelCleared)
}

func TestRejectedCommandsContinue(t *testing.T) {
	var out, logs bytes.Buffer
	logger := log.New(&logs)
	logger.SetLevel(log.DebugLevel)

	d := New(&out, drmario.DefaultRules(), logger)
	err := d.Run(strings.NewReader("4\n4\nEMPTY\nV 9 9 r\nZ\nF R\nV 3 0 b\n"))
	require.NoError(t, err)

	assert.Equal(t, 5, strings.Count(out.String(), " ------------ \n"))
	assert.Contains(t, logs.String(), "rejected command")
	assert.Contains(t, logs.String(), "virus rejected")
	assert.True(t, d.Game().HasViruses())
	assert.True(t, strings.HasSuffix(out.String(), "| b          |\n ------------ \n"))
}

func TestSetupErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		is    error
	}{
		{"too small", "3\n4\nEMPTY\n", drmario.ErrInvalidDimensions},
		{"too large", "100000\n100000\nCONTENTS\n", drmario.ErrInvalidDimensions},
		{"row too long", "4\n3\nCONTENTS\n\nRRRR\n\n\n", drmario.ErrInvalidDimensions},
		{"bad contents", "4\n4\nCONTENTS\n\nx\n\n\n", drmario.ErrInvalidContents},
		{"truncated contents", "4\n4\nCONTENTS\n\n", ErrUnexpectedEOF},
		{"no input", "", ErrUnexpectedEOF},
		{"bad number", "four\n4\nEMPTY\n", nil},
		{"bad keyword", "4\n4\nFULL\n", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.input)
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
			assert.Empty(t, out)
		})
	}
}

func TestReadSetupKeepsLiteralRows(t *testing.T) {
	in := "4\r\n3\r\ncontents\r\n\r\n r\r\nB  \r\n  Y\r\n"
	setup, err := ReadSetup(bufioScanner(in))
	require.NoError(t, err)
	assert.Equal(t, 4, setup.Rows)
	assert.Equal(t, 3, setup.Cols)
	assert.Equal(t, []string{"", " r", "B  ", "  Y"}, setup.Contents)
}

func TestRulesAffectMatches(t *testing.T) {
	var out bytes.Buffer
	nes := drmario.Rules{MinRun: 4}
	err := New(&out, nes, nil).Run(strings.NewReader("4\n3\nCONTENTS\n\n\n\nRRR\n\n"))
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "*R*", "runs of three do not clear under nes rules")
}
