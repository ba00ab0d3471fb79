package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Aspenini/Raycast-TUI/internal/raycast"
)

// Palette holds the colors a frame is shaded with. Walls run a gradient
// from Near to Far with distance; ceiling and floor darken away from the
// horizon. Any monotonic distance-to-brightness mapping satisfies the
// renderer, these defaults match the look of the original.
type Palette struct {
	WallNear    colorful.Color
	WallFar     colorful.Color
	CeilingNear colorful.Color
	CeilingFar  colorful.Color
	FloorNear   colorful.Color
	FloorFar    colorful.Color
}

// DefaultPalette returns the standard warm-wall, blue-sky palette.
func DefaultPalette() Palette {
	return Palette{
		WallNear:    colorful.Color{R: 1.00, G: 0.85, B: 0.25},
		WallFar:     colorful.Color{R: 0.35, G: 0.05, B: 0.02},
		CeilingNear: colorful.Color{R: 0.30, G: 0.65, B: 0.95},
		CeilingFar:  colorful.Color{R: 0.05, G: 0.15, B: 0.40},
		FloorNear:   colorful.Color{R: 0.55, G: 0.55, B: 0.55},
		FloorFar:    colorful.Color{R: 0.15, G: 0.15, B: 0.15},
	}
}

// maxShadeDistance is where the wall gradient bottoms out; walls further
// away all render at the far color.
const maxShadeDistance = 15.0

// sideDarken is how much Y-facing wall faces are pushed toward black,
// giving the two-tone cue that separates perpendicular faces at corners.
const sideDarken = 0.30

// WallShade maps a perpendicular hit distance to a wall color. The mapping
// is log-scaled so depth differences up close read more strongly than far
// away, and brightness strictly decreases with distance.
func (p Palette) WallShade(distance float64, side raycast.Side) colorful.Color {
	d := math.Min(math.Max(distance, 0.1), maxShadeDistance)
	t := math.Log(d+1) / math.Log(maxShadeDistance+1)

	c := p.WallNear.BlendLab(p.WallFar, t).Clamped()
	if side == raycast.SideY {
		c = c.BlendRgb(colorful.Color{}, sideDarken)
	}
	return c
}

// CeilingShade maps a row's distance from the horizon (0 at the horizon,
// 1 at the top of the screen) to a ceiling color.
func (p Palette) CeilingShade(fromHorizon float64) colorful.Color {
	return p.CeilingNear.BlendLab(p.CeilingFar, math.Min(fromHorizon, 1)).Clamped()
}

// FloorShade maps a row's distance from the horizon (0 at the horizon,
// 1 at the bottom of the screen) to a floor color.
func (p Palette) FloorShade(fromHorizon float64) colorful.Color {
	return p.FloorNear.BlendLab(p.FloorFar, math.Min(fromHorizon, 1)).Clamped()
}
