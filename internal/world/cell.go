// Package world provides the map grid the raycaster walks.
package world

// Cell represents a single map cell.
type Cell uint8

const (
	// CellEmpty represents open space a ray passes through.
	CellEmpty Cell = 0
	// CellWall represents a solid wall cell that stops rays and movement.
	CellWall Cell = 1
)

// IsWall returns true if the cell blocks rays and movement.
func (c Cell) IsWall() bool {
	return c == CellWall
}

// Rune returns the cell's character in the textual map format.
func (c Cell) Rune() rune {
	if c == CellWall {
		return '1'
	}
	return '0'
}
