package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ulloaluis/2048/internal/board"
	"github.com/ulloaluis/2048/internal/gamedata"
)

const (
	// Cell geometry in terminal characters.
	cellWidth  = 7
	cellHeight = 3

	originX = 2
	originY = 1
)

// Renderer draws the board to the screen.
type Renderer struct {
	screen *Screen
	styles *gamedata.StyleRegistry
}

// NewRenderer creates a new renderer for the given screen and tile styles.
func NewRenderer(screen *Screen, styles *gamedata.StyleRegistry) *Renderer {
	return &Renderer{screen: screen, styles: styles}
}

// Render draws a row-major board layout with a message line beneath it.
func (r *Renderer) Render(values []board.Cell, size int, message string) {
	r.screen.Clear()

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			r.drawCell(row, col, values[row*size+col])
		}
	}

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	below := originY + size*(cellHeight+1) + 1
	r.screen.DrawText(originX, below, message, textStyle)
	r.screen.DrawText(originX, below+1, "arrows/wasd/hjkl move, q quits",
		tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// drawCell fills one tile's rectangle and centers its value.
func (r *Renderer) drawCell(row, col int, value board.Cell) {
	style := r.styles.StyleFor(int(value)).Style()
	x0 := originX + col*(cellWidth+1)
	y0 := originY + row*(cellHeight+1)

	for dy := 0; dy < cellHeight; dy++ {
		line := strings.Repeat(" ", cellWidth)
		if dy == cellHeight/2 {
			line = FormatCell(value, cellWidth)
		}
		r.screen.DrawText(x0, y0+dy, line, style)
	}
}

// FormatCell centers the cell's value in a field of the given width. Empty
// cells are blank; values wider than the field are returned as is.
func FormatCell(value board.Cell, width int) string {
	if value.IsEmpty() {
		return strings.Repeat(" ", width)
	}
	text := value.String()
	pad := width - len(text)
	if pad <= 0 {
		return text
	}
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}
