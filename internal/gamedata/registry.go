package gamedata

import (
	"errors"
	"math/rand"
)

// SpawnRegistry holds the spawn distribution and picks values from it.
type SpawnRegistry struct {
	spawns      []SpawnDef
	totalWeight int
}

// NewSpawnRegistry creates a registry from loaded spawn definitions.
func NewSpawnRegistry(spawns []SpawnDef) *SpawnRegistry {
	totalWeight := 0
	for _, s := range spawns {
		totalWeight += s.SpawnWeight
	}
	return &SpawnRegistry{
		spawns:      spawns,
		totalWeight: totalWeight,
	}
}

// LoadSpawnRegistry loads and creates a registry from the embedded tiles.json.
func LoadSpawnRegistry() (*SpawnRegistry, error) {
	file, err := LoadTiles()
	if err != nil {
		return nil, err
	}
	if len(file.Spawns) == 0 {
		return nil, errors.New("no spawns loaded from tiles.json")
	}
	registry := NewSpawnRegistry(file.Spawns)
	if registry.totalWeight <= 0 {
		return nil, errors.New("spawn weights in tiles.json must sum to a positive value")
	}
	return registry, nil
}

// MustLoadSpawnRegistry loads a registry, panicking on error.
func MustLoadSpawnRegistry() *SpawnRegistry {
	registry, err := LoadSpawnRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnValue selects a tile value using weighted probability.
// It returns 0 if the registry is empty.
func (r *SpawnRegistry) SpawnValue(rng *rand.Rand) int {
	if r.totalWeight <= 0 || len(r.spawns) == 0 {
		return 0
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for _, s := range r.spawns {
		cumulative += s.SpawnWeight
		if roll < cumulative {
			return s.Value
		}
	}

	return r.spawns[0].Value
}

// All returns all spawn definitions.
func (r *SpawnRegistry) All() []SpawnDef {
	return r.spawns
}

// TotalWeight returns the sum of all spawn weights.
func (r *SpawnRegistry) TotalWeight() int {
	return r.totalWeight
}

// =============================================================================
// StyleRegistry
// =============================================================================

// StyleRegistry maps tile values to their draw styles.
type StyleRegistry struct {
	styles   map[int]TileStyle
	fallback TileStyle
}

// NewStyleRegistry creates a registry from loaded tile definitions.
func NewStyleRegistry(file TilesFile) *StyleRegistry {
	registry := &StyleRegistry{
		styles:   make(map[int]TileStyle, len(file.Tiles)),
		fallback: file.Fallback.ParseStyle(),
	}
	for i := range file.Tiles {
		registry.styles[file.Tiles[i].Value] = file.Tiles[i].ParseStyle()
	}
	return registry
}

// LoadStyleRegistry loads and creates a registry from the embedded tiles.json.
func LoadStyleRegistry() (*StyleRegistry, error) {
	file, err := LoadTiles()
	if err != nil {
		return nil, err
	}
	if len(file.Tiles) == 0 {
		return nil, errors.New("no tiles loaded from tiles.json")
	}
	return NewStyleRegistry(file), nil
}

// MustLoadStyleRegistry loads a registry, panicking on error.
func MustLoadStyleRegistry() *StyleRegistry {
	registry, err := LoadStyleRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// StyleFor returns the style for a tile value, or the fallback style for
// values without their own entry.
func (r *StyleRegistry) StyleFor(value int) TileStyle {
	if s, ok := r.styles[value]; ok {
		return s
	}
	return r.fallback
}

// Count returns the number of tile values with their own style.
func (r *StyleRegistry) Count() int {
	return len(r.styles)
}
