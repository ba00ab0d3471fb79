// Package player holds the camera pose and applies movement to it.
package player

import (
	"math"

	"github.com/Aspenini/Raycast-TUI/internal/world"
)

// State is the player's pose: continuous position on the grid and a facing
// angle in radians, kept normalized to [0, 2π). It is mutated only by the
// input step of the tick loop; the renderer reads it.
type State struct {
	X, Y  float64
	Angle float64
}

// New creates a player state at the given position and facing angle.
func New(x, y, angle float64) *State {
	s := &State{X: x, Y: y, Angle: angle}
	s.normalize()
	return s
}

// Direction returns the unit facing vector.
func (s *State) Direction() (dx, dy float64) {
	return math.Cos(s.Angle), math.Sin(s.Angle)
}

// Plane returns the camera-plane vector perpendicular to the facing
// direction, scaled by the field-of-view half-width. Rays fan from
// direction - plane to direction + plane across the screen.
func (s *State) Plane(fov float64) (px, py float64) {
	return -math.Sin(s.Angle) * fov, math.Cos(s.Angle) * fov
}

// MoveForward advances the player along the facing vector by dist,
// which may be negative to walk backwards.
func (s *State) MoveForward(grid *world.Grid, dist float64) {
	dx, dy := s.Direction()
	s.move(grid, dx*dist, dy*dist)
}

// Strafe moves the player perpendicular to the facing vector by dist.
// Positive dist strafes right, negative left.
func (s *State) Strafe(grid *world.Grid, dist float64) {
	dx, dy := s.Direction()
	s.move(grid, -dy*dist, dx*dist)
}

// move applies a displacement with the collision check done per axis, so a
// diagonal push into a wall still slides along it.
func (s *State) move(grid *world.Grid, dx, dy float64) {
	newX := s.X + dx
	if !grid.IsWall(int(math.Floor(newX)), int(math.Floor(s.Y))) {
		s.X = newX
	}
	newY := s.Y + dy
	if !grid.IsWall(int(math.Floor(s.X)), int(math.Floor(newY))) {
		s.Y = newY
	}
}

// Rotate turns the player by delta radians and renormalizes the angle.
func (s *State) Rotate(delta float64) {
	s.Angle += delta
	s.normalize()
}

// normalize wraps the angle into [0, 2π).
func (s *State) normalize() {
	s.Angle = math.Mod(s.Angle, 2*math.Pi)
	if s.Angle < 0 {
		s.Angle += 2 * math.Pi
	}
}
