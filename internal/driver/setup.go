package driver

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/drmario/internal/games/drmario"
)

// ErrUnexpectedEOF is returned when input ends before setup is complete.
var ErrUnexpectedEOF = errors.New("driver: input ended during setup")

// Setup is the field description that precedes the command stream.
type Setup struct {
	Rows     int
	Cols     int
	Contents []string // nil for EMPTY
}

// NewGame builds a game from the setup.
func (s Setup) NewGame(rules drmario.Rules) (*drmario.Game, error) {
	g, err := drmario.NewWithRules(s.Rows, s.Cols, s.Contents, rules)
	if err != nil {
		return nil, fmt.Errorf("driver: setup: %w", err)
	}
	return g, nil
}

// ReadSetup reads the rows line, the cols line and the EMPTY or CONTENTS
// keyword. CONTENTS is followed by exactly rows literal lines, kept as
// written apart from a trailing carriage return.
func ReadSetup(sc *bufio.Scanner) (Setup, error) {
	var s Setup
	var err error

	if s.Rows, err = readInt(sc, "rows"); err != nil {
		return s, err
	}
	if s.Cols, err = readInt(sc, "cols"); err != nil {
		return s, err
	}
	// Checked before CONTENTS so the row count never sizes an allocation.
	if err := drmario.ValidateDimensions(s.Rows, s.Cols); err != nil {
		return s, fmt.Errorf("driver: setup: %w", err)
	}

	keyword, err := readLine(sc)
	if err != nil {
		return s, err
	}
	switch strings.ToUpper(strings.TrimSpace(keyword)) {
	case "EMPTY":
		return s, nil
	case "CONTENTS":
	default:
		return s, fmt.Errorf("driver: expected EMPTY or CONTENTS, got %q", keyword)
	}

	s.Contents = make([]string, 0, s.Rows)
	for i := 0; i < s.Rows; i++ {
		line, err := readLine(sc)
		if err != nil {
			return s, err
		}
		s.Contents = append(s.Contents, line)
	}
	return s, nil
}

func readLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("driver: reading setup: %w", err)
		}
		return "", ErrUnexpectedEOF
	}
	return strings.TrimSuffix(sc.Text(), "\r"), nil
}

func readInt(sc *bufio.Scanner, what string) (int, error) {
	line, err := readLine(sc)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("driver: bad %s %q: %w", what, line, err)
	}
	return n, nil
}
