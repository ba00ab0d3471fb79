package player

import (
	"math"
	"testing"

	"github.com/Aspenini/Raycast-TUI/internal/world"
)

const tolerance = 1e-9

func testGrid(t *testing.T, rows []string) *world.Grid {
	t.Helper()
	g, err := world.ParseRows(rows)
	if err != nil {
		t.Fatalf("Failed to parse test map: %v", err)
	}
	return g
}

func TestMoveIntoWallRejected(t *testing.T) {
	grid := testGrid(t, []string{
		"1111",
		"1001",
		"1001",
		"1111",
	})

	// Facing east, hard against the east wall.
	p := New(2.9, 1.5, 0)
	p.MoveForward(grid, 0.5)

	if p.X != 2.9 || p.Y != 1.5 {
		t.Errorf("Blocked move changed position to (%v,%v), want (2.9,1.5)", p.X, p.Y)
	}
}

func TestDiagonalSlideAlongWall(t *testing.T) {
	grid := testGrid(t, []string{
		"11111",
		"10001",
		"10001",
		"10001",
		"11111",
	})

	// Facing roughly northeast into the east wall: the X component is
	// blocked but the Y component still applies, so the player slides.
	p := New(3.9, 2.5, -math.Pi/4)
	p.MoveForward(grid, 0.2)

	if p.X != 3.9 {
		t.Errorf("X should be blocked at 3.9, got %v", p.X)
	}
	if p.Y >= 2.5 {
		t.Errorf("Y should have slid north of 2.5, got %v", p.Y)
	}
}

func TestStrafePerpendicular(t *testing.T) {
	grid := testGrid(t, []string{
		"11111",
		"10001",
		"10001",
		"10001",
		"11111",
	})

	// Facing east, a right strafe moves south (screen coordinates,
	// Y grows downward).
	p := New(2.5, 2.5, 0)
	p.Strafe(grid, 0.25)

	if math.Abs(p.X-2.5) > tolerance {
		t.Errorf("Strafe changed X to %v", p.X)
	}
	if math.Abs(p.Y-2.75) > tolerance {
		t.Errorf("Strafe right should move Y to 2.75, got %v", p.Y)
	}
}

func TestRotationClosure(t *testing.T) {
	p := New(2, 2, 1.25)
	start := p.Angle

	step := 2 * math.Pi / 360
	for i := 0; i < 360; i++ {
		p.Rotate(step)
	}

	if math.Abs(p.Angle-start) > 1e-6 {
		t.Errorf("Full revolution drifted angle from %v to %v", start, p.Angle)
	}
}

func TestAngleNormalization(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"negative", -math.Pi / 2, 3 * math.Pi / 2},
		{"wrapped", 5 * math.Pi, math.Pi},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(0, 0, tt.angle)
			if math.Abs(p.Angle-tt.want) > tolerance {
				t.Errorf("Angle = %v, want %v", p.Angle, tt.want)
			}
		})
	}

	p := New(0, 0, 0)
	p.Rotate(-0.5)
	if p.Angle < 0 || p.Angle >= 2*math.Pi {
		t.Errorf("Rotate left normalization failed: %v", p.Angle)
	}
}

func TestDirectionAndPlaneOrthogonal(t *testing.T) {
	p := New(0, 0, 0.7)

	dx, dy := p.Direction()
	px, py := p.Plane(0.66)

	if dot := dx*px + dy*py; math.Abs(dot) > tolerance {
		t.Errorf("Plane not perpendicular to direction, dot = %v", dot)
	}
	if length := math.Hypot(px, py); math.Abs(length-0.66) > tolerance {
		t.Errorf("Plane length = %v, want 0.66", length)
	}
}
