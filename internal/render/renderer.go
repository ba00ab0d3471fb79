package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Aspenini/Raycast-TUI/internal/player"
	"github.com/Aspenini/Raycast-TUI/internal/raycast"
	"github.com/Aspenini/Raycast-TUI/internal/world"
)

// upperHalfBlock paints two vertical pixels per terminal cell: the
// foreground color fills the top half, the background the bottom.
const upperHalfBlock = '▀'

// Renderer projects wall columns for a fixed grid and field of view.
// Render is a pure function of the player pose and screen dimensions:
// the same inputs always produce an identical FrameBuffer.
type Renderer struct {
	caster  *raycast.Caster
	fov     float64
	palette Palette
}

// NewRenderer creates a renderer over the given grid with the default
// palette. fov is the camera plane half-width (0.66 gives the usual
// ~66 degree horizontal view).
func NewRenderer(grid *world.Grid, fov float64) *Renderer {
	return &Renderer{
		caster:  raycast.NewCaster(grid),
		fov:     fov,
		palette: DefaultPalette(),
	}
}

// SetPalette replaces the shading palette, for maps that ship their own.
func (r *Renderer) SetPalette(p Palette) {
	r.palette = p
}

// Render casts one ray per screen column from the player pose and returns
// the completed frame. Rows are rendered at double vertical resolution and
// folded into half-block cells, so a width×height terminal shows a
// width×(2·height) pixel image.
func (r *Renderer) Render(p *player.State, width, height int) *FrameBuffer {
	frame := NewFrameBuffer(width, height)
	if width <= 0 || height <= 0 {
		return frame
	}

	double := height * 2

	for x := 0; x < width; x++ {
		cameraX := 2*float64(x)/float64(width) - 1
		rayAngle := p.Angle + math.Atan(cameraX*r.fov)
		hit := r.caster.Cast(p.X, p.Y, math.Cos(rayAngle), math.Sin(rayAngle))

		drawStart, drawEnd := wallBand(hit, double)
		var wall Cell
		if hit.Wall {
			shade := r.palette.WallShade(hit.Distance, hit.Side)
			wall = Cell{Rune: upperHalfBlock, Fg: shade, Bg: shade}
		}

		for y := 0; y < height; y++ {
			upper := y * 2
			lower := upper + 1
			frame.Set(x, y, Cell{
				Rune: upperHalfBlock,
				Fg:   r.pixel(upper, drawStart, drawEnd, double, wall.Fg, hit.Wall),
				Bg:   r.pixel(lower, drawStart, drawEnd, double, wall.Bg, hit.Wall),
			})
		}
	}

	return frame
}

// wallBand returns the half-open pixel row range [start, end) covered by
// the wall column for a hit, in double-resolution rows. A miss collapses
// the band to nothing at the horizon.
func wallBand(hit raycast.Hit, double int) (start, end int) {
	if !hit.Wall {
		return double / 2, double / 2
	}
	lineHeight := int(float64(double) / math.Max(hit.Distance, 0.1))
	if lineHeight > double {
		lineHeight = double
	}
	start = (double - lineHeight) / 2
	end = (double + lineHeight) / 2
	return start, end
}

// pixel shades a single double-resolution row of a column.
func (r *Renderer) pixel(row, drawStart, drawEnd, double int, wall colorful.Color, hasWall bool) colorful.Color {
	switch {
	case hasWall && row >= drawStart && row < drawEnd:
		return wall
	case row < drawStart:
		return r.palette.CeilingShade(float64(drawStart-row) / float64(double))
	default:
		return r.palette.FloorShade(float64(row-drawEnd) / float64(double))
	}
}
