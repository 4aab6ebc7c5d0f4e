package board

// Direction is one of the four moves a player can make.
type Direction int

const (
	// Up slides tiles toward row 0.
	Up Direction = iota
	// Down slides tiles toward the last row.
	Down
	// Left slides tiles toward column 0.
	Left
	// Right slides tiles toward the last column.
	Right
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// vertical reports whether the direction moves tiles along columns.
func (d Direction) vertical() bool {
	return d == Up || d == Down
}

// towardHigh reports whether the target edge is the high-index end of a line.
func (d Direction) towardHigh() bool {
	return d == Down || d == Right
}
