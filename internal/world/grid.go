package world

import (
	"fmt"
	"math"
)

// Grid is the static occupancy map for a session. It is immutable after
// construction: every accessor treats out-of-bounds coordinates as wall,
// so a ray walked across the grid always terminates (closed world).
type Grid struct {
	Width  int
	Height int
	cells  [][]Cell
}

// ParseRows builds a Grid from the textual map format: one string per row,
// '1' for wall and '0' for empty. The rows must form a rectangle and the
// border must be entirely wall; anything else is a load-time error.
func ParseRows(rows []string) (*Grid, error) {
	if len(rows) < 3 {
		return nil, fmt.Errorf("map too small: %d rows, need at least 3", len(rows))
	}

	width := len(rows[0])
	if width < 3 {
		return nil, fmt.Errorf("map too narrow: %d columns, need at least 3", width)
	}

	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("map is not rectangular: row %d has %d columns, expected %d", y, len(row), width)
		}
		cells[y] = make([]Cell, width)
		for x, ch := range row {
			switch ch {
			case '0':
				cells[y][x] = CellEmpty
			case '1':
				cells[y][x] = CellWall
			default:
				return nil, fmt.Errorf("invalid map character %q at (%d,%d)", ch, x, y)
			}
		}
	}

	g := &Grid{
		Width:  width,
		Height: len(rows),
		cells:  cells,
	}

	if err := g.checkEnclosed(); err != nil {
		return nil, err
	}
	return g, nil
}

// checkEnclosed verifies every border cell is a wall.
func (g *Grid) checkEnclosed() error {
	for x := 0; x < g.Width; x++ {
		if !g.cells[0][x].IsWall() {
			return fmt.Errorf("map is not enclosed: open cell at (%d,0)", x)
		}
		if !g.cells[g.Height-1][x].IsWall() {
			return fmt.Errorf("map is not enclosed: open cell at (%d,%d)", x, g.Height-1)
		}
	}
	for y := 0; y < g.Height; y++ {
		if !g.cells[y][0].IsWall() {
			return fmt.Errorf("map is not enclosed: open cell at (0,%d)", y)
		}
		if !g.cells[y][g.Width-1].IsWall() {
			return fmt.Errorf("map is not enclosed: open cell at (%d,%d)", g.Width-1, y)
		}
	}
	return nil
}

// IsWall returns true if the cell at (x, y) blocks rays and movement.
// Out-of-bounds coordinates always count as wall.
func (g *Grid) IsWall(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return true
	}
	return g.cells[y][x].IsWall()
}

// CellAt returns the cell at (x, y), or CellWall when out of bounds.
func (g *Grid) CellAt(x, y int) Cell {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return CellWall
	}
	return g.cells[y][x]
}

// Diagonal returns the grid diagonal in cells, rounded up. Used as the
// safety bound on DDA step counts.
func (g *Grid) Diagonal() int {
	return int(math.Ceil(math.Hypot(float64(g.Width), float64(g.Height))))
}
