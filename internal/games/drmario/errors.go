package drmario

import "fmt"

// ErrorKind classifies engine errors.
type ErrorKind string

const (
	KindInvalidDimensions ErrorKind = "INVALID_DIMENSIONS"
	KindInvalidContents   ErrorKind = "INVALID_CONTENTS"
	KindOutOfBounds       ErrorKind = "OUT_OF_BOUNDS"
	KindCellOccupied      ErrorKind = "CELL_OCCUPIED"
	KindInvalidColor      ErrorKind = "INVALID_COLOR"
	KindSpawnBlocked      ErrorKind = "SPAWN_BLOCKED"
	KindFallerActive      ErrorKind = "FALLER_ACTIVE"
	KindGameOver          ErrorKind = "GAME_OVER"
)

// Error is returned by engine operations that reject a command.
// The engine state is unchanged whenever one is returned, except for
// KindSpawnBlocked which ends the game.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[%s]", e.Kind)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Is matches on Kind only, so errors.Is(err, ErrCellOccupied) works for
// errors carrying a specific message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidDimensions = &Error{Kind: KindInvalidDimensions}
	ErrInvalidContents   = &Error{Kind: KindInvalidContents}
	ErrOutOfBounds       = &Error{Kind: KindOutOfBounds}
	ErrCellOccupied      = &Error{Kind: KindCellOccupied}
	ErrInvalidColor      = &Error{Kind: KindInvalidColor}
	ErrSpawnBlocked      = &Error{Kind: KindSpawnBlocked}
	ErrFallerActive      = &Error{Kind: KindFallerActive}
	ErrGameOver          = &Error{Kind: KindGameOver}
)

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
