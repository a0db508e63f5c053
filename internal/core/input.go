package core

// Action represents a semantic game action, abstracted from physical key presses.
// Front-ends translate keys to actions and actions to engine calls.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Move the faller one column left
	ActionRight            // Move the faller one column right
	ActionRotateCW         // Rotate clockwise
	ActionRotateCCW        // Rotate counter-clockwise
	ActionStep             // Advance one gravity step
	ActionDrop             // Step until the faller lands
	ActionRestart          // New game after game over or clear
	ActionHelp             // Toggle the full help view
	ActionQuit             // Exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionStep:
		return "Step"
	case ActionDrop:
		return "Drop"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
