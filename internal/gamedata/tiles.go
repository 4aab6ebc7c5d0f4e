package gamedata

import "github.com/gdamore/tcell/v2"

// SpawnDef is one entry of the spawn distribution loaded from JSON.
type SpawnDef struct {
	Value       int `json:"value"`       // Tile value placed on the board (2 or 4)
	SpawnWeight int `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// TileDef defines how a tile value is drawn.
type TileDef struct {
	Value      int    `json:"value"`      // Tile value, 0 for an empty cell
	Foreground string `json:"foreground"` // Hex color of the number
	Background string `json:"background"` // Hex color of the cell
}

// TileStyle holds the parsed colors for one tile value.
type TileStyle struct {
	Foreground tcell.Color
	Background tcell.Color
}

// Style returns the tcell style for drawing the tile.
func (s TileStyle) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Foreground).Background(s.Background).Bold(true)
}

// ParseStyle converts the tile's hex colors to a TileStyle.
// Unparseable colors fall back to white on black.
func (t *TileDef) ParseStyle() TileStyle {
	fg, err := ParseHexColor(t.Foreground)
	if err != nil {
		fg = tcell.ColorWhite
	}
	bg, err := ParseHexColor(t.Background)
	if err != nil {
		bg = tcell.ColorBlack
	}
	return TileStyle{Foreground: fg, Background: bg}
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Spawns   []SpawnDef `json:"spawns"`
	Tiles    []TileDef  `json:"tiles"`
	Fallback TileDef    `json:"fallback"`
}

// LoadTiles loads spawn and tile definitions from the embedded tiles.json file.
func LoadTiles() (TilesFile, error) {
	return Load[TilesFile]("tiles.json")
}

// MustLoadTiles loads tile definitions, panicking on error.
func MustLoadTiles() TilesFile {
	file, err := LoadTiles()
	if err != nil {
		panic(err)
	}
	return file
}
