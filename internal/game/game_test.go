package game

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Aspenini/Raycast-TUI/data"
	"github.com/Aspenini/Raycast-TUI/internal/player"
	"github.com/Aspenini/Raycast-TUI/internal/world"
)

func testGame(t *testing.T) *Game {
	t.Helper()
	grid, err := world.ParseRows([]string{
		"11111",
		"10001",
		"10001",
		"10001",
		"11111",
	})
	if err != nil {
		t.Fatalf("Failed to parse test map: %v", err)
	}
	return &Game{
		grid:    grid,
		player:  player.New(2.5, 2.5, 0),
		cfg:     DefaultConfig(),
		running: true,
	}
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Command
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), CommandMoveForward},
		{"shift w", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), CommandMoveForward},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), CommandMoveBackward},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), CommandStrafeLeft},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), CommandStrafeRight},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), CommandMoveForward},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), CommandMoveBackward},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), CommandRotateLeft},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), CommandRotateRight},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), CommandQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CommandQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeKey(tt.ev); got != tt.want {
				t.Errorf("decodeKey = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyMovement(t *testing.T) {
	g := testGame(t)

	g.apply(CommandMoveForward)
	if g.player.X <= 2.5 {
		t.Errorf("Forward move facing east should increase X, got %v", g.player.X)
	}

	g.apply(CommandMoveBackward)
	if math.Abs(g.player.X-2.5) > 1e-9 {
		t.Errorf("Backward move should return X to 2.5, got %v", g.player.X)
	}

	g.apply(CommandStrafeRight)
	if g.player.Y <= 2.5 {
		t.Errorf("Right strafe facing east should increase Y, got %v", g.player.Y)
	}
}

func TestApplyMovementBlockedByWall(t *testing.T) {
	g := testGame(t)
	g.player = player.New(3.98, 2.5, 0)

	g.apply(CommandMoveForward)
	if g.player.X != 3.98 || g.player.Y != 2.5 {
		t.Errorf("Move into wall should be rejected, got (%v,%v)", g.player.X, g.player.Y)
	}
}

func TestApplyRotation(t *testing.T) {
	g := testGame(t)

	g.apply(CommandRotateRight)
	if math.Abs(g.player.Angle-g.cfg.RotateSpeed) > 1e-9 {
		t.Errorf("Angle = %v, want %v", g.player.Angle, g.cfg.RotateSpeed)
	}

	g.apply(CommandRotateLeft)
	if math.Abs(g.player.Angle) > 1e-9 {
		t.Errorf("Angle should return to 0, got %v", g.player.Angle)
	}
}

func TestApplyQuit(t *testing.T) {
	g := testGame(t)

	g.apply(CommandNone)
	if !g.running {
		t.Error("CommandNone should not stop the loop")
	}

	g.apply(CommandQuit)
	if g.running {
		t.Error("CommandQuit should stop the loop")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}

	bad := DefaultConfig()
	bad.TickRate = 0
	if err := bad.Validate(); err == nil {
		t.Error("Zero tick rate should be rejected")
	}

	bad = DefaultConfig()
	bad.FOV = -1
	if err := bad.Validate(); err == nil {
		t.Error("Negative FOV should be rejected")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("RAYCAST_MAP", "corridors")
	t.Setenv("RAYCAST_TICK_RATE", "30")
	t.Setenv("RAYCAST_FOV", "0.8")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.MapID != "corridors" {
		t.Errorf("MapID = %q, want corridors", cfg.MapID)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", cfg.TickRate)
	}
	if cfg.FOV != 0.8 {
		t.Errorf("FOV = %g, want 0.8", cfg.FOV)
	}
	// Untouched settings keep their defaults
	if cfg.MoveSpeed != DefaultConfig().MoveSpeed {
		t.Errorf("MoveSpeed = %g, want default", cfg.MoveSpeed)
	}
}

func TestFromEnvRejectsMalformed(t *testing.T) {
	t.Setenv("RAYCAST_TICK_RATE", "fast")
	if _, err := FromEnv(); err == nil {
		t.Error("Malformed tick rate should be rejected")
	}
}

func TestBuildPalette(t *testing.T) {
	def := &data.PaletteDef{
		WallNear:    "#FFFFFF",
		WallFar:     "#000000",
		CeilingNear: "#4DA6F2",
		CeilingFar:  "#0D2666",
		FloorNear:   "#8C8C8C",
		FloorFar:    "#262626",
	}

	palette, err := buildPalette(def)
	if err != nil {
		t.Fatalf("buildPalette failed: %v", err)
	}
	if palette.WallNear.R != 1 || palette.WallFar.R != 0 {
		t.Errorf("Wall colors not parsed: near %v, far %v", palette.WallNear, palette.WallFar)
	}

	def.FloorFar = "not-a-color"
	if _, err := buildPalette(def); err == nil {
		t.Error("Invalid hex should be rejected")
	}
}
