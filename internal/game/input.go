package game

import "github.com/gdamore/tcell/v2"

// decodeKey maps a key event to a command. WASD and the arrow keys both
// work: arrows turn rather than strafe, matching the usual raycaster
// bindings. Unbound keys decode to CommandNone.
func decodeKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyUp:
		return CommandMoveForward
	case tcell.KeyDown:
		return CommandMoveBackward
	case tcell.KeyLeft:
		return CommandRotateLeft
	case tcell.KeyRight:
		return CommandRotateRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return CommandMoveForward
		case 's', 'S':
			return CommandMoveBackward
		case 'a', 'A':
			return CommandStrafeLeft
		case 'd', 'D':
			return CommandStrafeRight
		case 'q', 'Q':
			return CommandQuit
		}
	}
	return CommandNone
}
