package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ulloaluis/2048/internal/board"
)

// DirectionForKey decodes a key press into a move. Anything other than the
// arrow keys, WASD, or hjkl is not a move.
func DirectionForKey(ev *tcell.EventKey) (board.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return board.Up, true
	case tcell.KeyDown:
		return board.Down, true
	case tcell.KeyLeft:
		return board.Left, true
	case tcell.KeyRight:
		return board.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k', 'K':
			return board.Up, true
		case 's', 'S', 'j', 'J':
			return board.Down, true
		case 'a', 'A', 'h', 'H':
			return board.Left, true
		case 'd', 'D', 'l', 'L':
			return board.Right, true
		}
	}
	return 0, false
}

// isQuitKey reports whether the key ends the program.
func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
