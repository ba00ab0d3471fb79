// Package raycast implements DDA grid traversal for wall-distance queries.
package raycast

import (
	"math"

	"github.com/Aspenini/Raycast-TUI/internal/world"
)

// epsilon below which a direction component is treated as zero.
const epsilon = 1e-4

// infiniteStep stands in for the per-axis step distance when the ray never
// crosses grid lines on that axis.
const infiniteStep = 1e30

// Side identifies the orientation of the wall face a ray hit.
type Side int

const (
	// SideX is a wall face crossed by stepping along the X axis
	// (the face runs north-south).
	SideX Side = iota
	// SideY is a wall face crossed by stepping along the Y axis
	// (the face runs east-west).
	SideY
)

// Hit is the result of casting a single ray. Distance is perpendicular to
// the camera plane, not Euclidean, so columns projected from it do not
// suffer fish-eye distortion.
type Hit struct {
	Wall     bool    // false means the ray escaped without striking a wall
	Distance float64 // perpendicular distance to the wall face
	Side     Side    // which axis was stepped last before the hit
	CellX    int     // grid cell struck
	CellY    int
}

// Caster walks rays across a grid. It holds no per-ray state, so one caster
// serves every column of every frame.
type Caster struct {
	grid     *world.Grid
	maxSteps int
}

// NewCaster creates a caster over the given grid. A ray crosses at most one
// grid line per step, so width+height steps cover the longest walk across
// the grid; an enclosed map terminates every ray within that, the bound only
// guards against a malformed grid slipping through validation.
func NewCaster(grid *world.Grid) *Caster {
	return &Caster{
		grid:     grid,
		maxSteps: grid.Width + grid.Height,
	}
}

// Cast walks a ray from (originX, originY) along (dirX, dirY) until it
// enters a wall cell, and returns the perpendicular hit distance.
// A degenerate direction or an escaped ray returns Hit{Wall: false}.
//
// On each iteration the axis with the smaller accumulated side distance is
// stepped; when the two are exactly equal, Y is stepped. The tie choice only
// affects which face of an exact corner is reported, not the distance.
func (c *Caster) Cast(originX, originY, dirX, dirY float64) Hit {
	length := math.Hypot(dirX, dirY)
	if length < epsilon {
		return Hit{}
	}
	dirX /= length
	dirY /= length

	deltaDistX := infiniteStep
	if math.Abs(dirX) >= epsilon {
		deltaDistX = math.Abs(1 / dirX)
	}
	deltaDistY := infiniteStep
	if math.Abs(dirY) >= epsilon {
		deltaDistY = math.Abs(1 / dirY)
	}

	mapX := int(math.Floor(originX))
	mapY := int(math.Floor(originY))

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if dirX < 0 {
		stepX = -1
		sideDistX = (originX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - originX) * deltaDistX
	}
	if dirY < 0 {
		stepY = -1
		sideDistY = (originY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - originY) * deltaDistY
	}

	side := SideX
	for i := 0; i < c.maxSteps; i++ {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = SideX
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = SideY
		}

		if c.grid.IsWall(mapX, mapY) {
			var dist float64
			if side == SideX {
				dist = sideDistX - deltaDistX
			} else {
				dist = sideDistY - deltaDistY
			}
			return Hit{
				Wall:     true,
				Distance: dist,
				Side:     side,
				CellX:    mapX,
				CellY:    mapY,
			}
		}
	}

	return Hit{}
}
