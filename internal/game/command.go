// Package game provides the main game loop and per-tick state updates.
package game

// Command is a single pre-decoded input action for one tick. Decoding raw
// key events into commands belongs to the terminal layer.
type Command int

const (
	// CommandNone means no input this tick.
	CommandNone Command = iota
	// CommandMoveForward walks along the facing vector.
	CommandMoveForward
	// CommandMoveBackward walks against the facing vector.
	CommandMoveBackward
	// CommandStrafeLeft sidesteps left of the facing vector.
	CommandStrafeLeft
	// CommandStrafeRight sidesteps right of the facing vector.
	CommandStrafeRight
	// CommandRotateLeft turns counterclockwise.
	CommandRotateLeft
	// CommandRotateRight turns clockwise.
	CommandRotateRight
	// CommandQuit ends the session after the current frame.
	CommandQuit
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandMoveForward:
		return "move_forward"
	case CommandMoveBackward:
		return "move_backward"
	case CommandStrafeLeft:
		return "strafe_left"
	case CommandStrafeRight:
		return "strafe_right"
	case CommandRotateLeft:
		return "rotate_left"
	case CommandRotateRight:
		return "rotate_right"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}
