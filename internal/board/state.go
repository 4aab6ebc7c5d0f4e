package board

// State is the game status tracked by a board.
type State int

const (
	// InProgress means moves are still accepted.
	InProgress State = iota
	// Win means a tile reached WinValue.
	Win
	// Lose means no direction can change the board.
	Lose
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Win:
		return "winning"
	case Lose:
		return "losing"
	default:
		return "unknown"
	}
}

// Terminal returns true for Win and Lose.
func (s State) Terminal() bool {
	return s == Win || s == Lose
}
