package data

import "errors"

// MapDef defines a playable map loaded from JSON. Rows use the textual grid
// format: one string per row, '1' for wall and '0' for empty.
type MapDef struct {
	ID         string      `json:"id"`         // Unique identifier (e.g., "arena")
	Name       string      `json:"name"`       // Display name (e.g., "The Arena")
	SpawnX     float64     `json:"spawnX"`     // Player start position
	SpawnY     float64     `json:"spawnY"`     //
	SpawnAngle float64     `json:"spawnAngle"` // Player start facing, radians
	Palette    *PaletteDef `json:"palette"`    // Optional shading override
	Rows       []string    `json:"rows"`       // Grid rows, top to bottom
}

// PaletteDef carries a map's shading colors as hex strings. All six fields
// are required when a palette is given.
type PaletteDef struct {
	WallNear    string `json:"wallNear"`
	WallFar     string `json:"wallFar"`
	CeilingNear string `json:"ceilingNear"`
	CeilingFar  string `json:"ceilingFar"`
	FloorNear   string `json:"floorNear"`
	FloorFar    string `json:"floorFar"`
}

// MapsFile represents the structure of maps.json.
type MapsFile struct {
	Maps []MapDef `json:"maps"`
}

// LoadMaps loads map definitions from the embedded maps.json file.
func LoadMaps() ([]MapDef, error) {
	file, err := Load[MapsFile]("maps.json")
	if err != nil {
		return nil, err
	}
	return file.Maps, nil
}

// MapRegistry holds loaded map definitions and provides lookup by id.
type MapRegistry struct {
	maps []MapDef
}

// NewMapRegistry creates a registry from loaded map definitions.
func NewMapRegistry(maps []MapDef) *MapRegistry {
	return &MapRegistry{maps: maps}
}

// LoadMapRegistry loads and creates a registry from the embedded maps.json.
func LoadMapRegistry() (*MapRegistry, error) {
	maps, err := LoadMaps()
	if err != nil {
		return nil, err
	}
	if len(maps) == 0 {
		return nil, errors.New("no maps loaded from maps.json")
	}
	return NewMapRegistry(maps), nil
}

// GetByID returns the map definition with the given id, or nil if not found.
func (r *MapRegistry) GetByID(id string) *MapDef {
	for i := range r.maps {
		if r.maps[i].ID == id {
			return &r.maps[i]
		}
	}
	return nil
}

// Default returns the first map in the registry.
func (r *MapRegistry) Default() *MapDef {
	return &r.maps[0]
}

// All returns all map definitions.
func (r *MapRegistry) All() []MapDef {
	return r.maps
}

// Count returns the number of maps in the registry.
func (r *MapRegistry) Count() int {
	return len(r.maps)
}
