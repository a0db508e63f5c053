// Package driver runs the line-oriented command protocol against the
// engine: a setup block, then one command per line, with an ASCII frame
// written after every command.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/drmario/internal/games/drmario"
)

// Status lines written after a frame.
const (
	LevelCleared = "LEVEL CLEARED"
	GameOver     = "GAME OVER"
)

// Driver reads commands and writes frames.
type Driver struct {
	out     io.Writer
	rules   drmario.Rules
	logger  *log.Logger
	game    *drmario.Game
	cleared bool
}

// New creates a driver writing frames to out. A nil logger discards logs.
func New(out io.Writer, rules drmario.Rules, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		out:    out,
		rules:  rules,
		logger: logger,
	}
}

// Game returns the game being driven, or nil before setup.
func (d *Driver) Game() *drmario.Game {
	return d.game
}

// Run reads the setup and then executes commands until Q, GAME OVER or
// end of input. Rejected commands are logged and the session continues;
// only setup and I/O errors are returned.
func (d *Driver) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)

	setup, err := ReadSetup(sc)
	if err != nil {
		return err
	}
	if d.game, err = setup.NewGame(d.rules); err != nil {
		return err
	}
	d.logger.Info("field ready", "rows", setup.Rows, "cols", setup.Cols,
		"contents", setup.Contents != nil, "rules", d.rules)

	if err := d.writeFrame(); err != nil {
		return err
	}

	for sc.Scan() {
		cmd, err := ParseCommand(sc.Text())
		if err != nil {
			d.logger.Debug("rejected command", "line", sc.Text(), "error", err)
		} else {
			if cmd.Kind == CmdQuit {
				d.logger.Debug("quit")
				return nil
			}
			d.Apply(cmd)
		}

		if err := d.writeFrame(); err != nil {
			return err
		}
		if d.game.GameOver() {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("driver: reading commands: %w", err)
	}
	return nil
}

// Apply runs one command against the game.
func (d *Driver) Apply(cmd Command) {
	g := d.game
	switch cmd.Kind {
	case CmdStep:
		g.ApplyGravityStep()
	case CmdSpawn:
		err := g.Spawn(cmd.Colors[0], cmd.Colors[1])
		switch {
		case errors.Is(err, drmario.ErrSpawnBlocked):
			d.logger.Info("spawn blocked", "error", err)
		case err != nil:
			d.logger.Debug("spawn rejected", "error", err)
		}
	case CmdLeft:
		g.MoveFaller(drmario.Left)
	case CmdRight:
		g.MoveFaller(drmario.Right)
	case CmdRotateCW:
		g.RotateFaller(drmario.Clockwise)
	case CmdRotateCCW:
		g.RotateFaller(drmario.CounterClockwise)
	case CmdVirus:
		if err := g.AddVirus(cmd.Row, cmd.Col, cmd.Colors[0]); err != nil {
			d.logger.Debug("virus rejected", "error", err)
		}
	}
}

func (d *Driver) writeFrame() error {
	frame := drmario.RenderASCII(d.game.Snapshot())
	if !d.game.HasViruses() {
		if !d.cleared {
			d.logger.Info("level cleared")
			d.cleared = true
		}
		frame += LevelCleared + "\n"
	} else {
		d.cleared = false
	}
	if d.game.GameOver() {
		d.logger.Info("game over")
		frame += GameOver + "\n"
	}
	if _, err := io.WriteString(d.out, frame); err != nil {
		return fmt.Errorf("driver: writing frame: %w", err)
	}
	return nil
}
