package driver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/drmario/internal/games/drmario"
)

// CommandKind identifies a protocol command.
type CommandKind int

const (
	CmdStep CommandKind = iota // Empty line
	CmdSpawn
	CmdLeft
	CmdRight
	CmdRotateCW
	CmdRotateCCW
	CmdVirus
	CmdQuit
)

func (k CommandKind) String() string {
	switch k {
	case CmdStep:
		return "step"
	case CmdSpawn:
		return "spawn"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdRotateCW:
		return "rotate-cw"
	case CmdRotateCCW:
		return "rotate-ccw"
	case CmdVirus:
		return "virus"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is one parsed protocol line.
type Command struct {
	Kind   CommandKind
	Colors [2]drmario.Color // CmdSpawn: both segments; CmdVirus: Colors[0]
	Row    int              // CmdVirus only
	Col    int              // CmdVirus only
}

// ParseCommand parses a single command line. Keywords and colors are
// case-insensitive; surrounding whitespace is ignored.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: CmdStep}, nil
	}

	name, args := strings.ToUpper(fields[0]), fields[1:]
	switch name {
	case "F":
		if len(args) != 2 {
			return Command{}, fmt.Errorf("driver: F takes 2 colors, got %d arguments", len(args))
		}
		a, err := parseColor(args[0])
		if err != nil {
			return Command{}, err
		}
		b, err := parseColor(args[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdSpawn, Colors: [2]drmario.Color{a, b}}, nil

	case "V":
		if len(args) != 3 {
			return Command{}, fmt.Errorf("driver: V takes row, col and color, got %d arguments", len(args))
		}
		row, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("driver: bad row %q: %w", args[0], err)
		}
		col, err := strconv.Atoi(args[1])
		if err != nil {
			return Command{}, fmt.Errorf("driver: bad column %q: %w", args[1], err)
		}
		c, err := parseColor(args[2])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdVirus, Row: row, Col: col, Colors: [2]drmario.Color{c}}, nil
	}

	if len(args) != 0 {
		return Command{}, fmt.Errorf("driver: %s takes no arguments", name)
	}
	switch name {
	case "<":
		return Command{Kind: CmdLeft}, nil
	case ">":
		return Command{Kind: CmdRight}, nil
	case "A":
		return Command{Kind: CmdRotateCW}, nil
	case "B":
		return Command{Kind: CmdRotateCCW}, nil
	case "Q":
		return Command{Kind: CmdQuit}, nil
	}
	return Command{}, fmt.Errorf("driver: unknown command %q", fields[0])
}

func parseColor(s string) (drmario.Color, error) {
	c, ok := drmario.ParseColor(s)
	if !ok {
		return c, fmt.Errorf("driver: unknown color %q", s)
	}
	return c, nil
}
