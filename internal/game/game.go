package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Aspenini/Raycast-TUI/data"
	"github.com/Aspenini/Raycast-TUI/internal/player"
	"github.com/Aspenini/Raycast-TUI/internal/render"
	"github.com/Aspenini/Raycast-TUI/internal/telemetry"
	"github.com/Aspenini/Raycast-TUI/internal/ui"
	"github.com/Aspenini/Raycast-TUI/internal/world"
)

// Game holds the entire session state.
type Game struct {
	screen    *ui.Screen
	presenter *ui.Presenter
	grid      *world.Grid
	renderer  *render.Renderer
	player    *player.State
	cfg       Config
	running   bool
	frames    int64
}

// New creates a new game instance and takes over the terminal.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:    screen,
		presenter: ui.NewPresenter(screen),
		cfg:       cfg,
		running:   true,
	}, nil
}

// Run loads the configured map and executes the fixed-rate frame loop until
// a quit command or context cancellation. The terminal is restored before
// Run returns, including on load errors.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")
	ctx, runSpan := tracer.Start(ctx, "game.run")
	defer runSpan.End()

	if err := g.load(ctx); err != nil {
		return err
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go g.screen.Events(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.TickRate))
	defer ticker.Stop()

	for g.running {
		g.drainInput(events)

		width, height := g.screen.Size()
		frame := g.renderer.Render(g.player, width, height)
		g.presenter.Present(frame)
		g.frames++

		select {
		case <-ctx.Done():
			g.running = false
		case <-ticker.C:
		}
	}

	runSpan.SetAttributes(attribute.Int64("game.frames", g.frames))
	return nil
}

// load resolves the configured map from the embedded registry and builds
// the grid, renderer and player from it.
func (g *Game) load(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	defer span.End()

	registry, err := data.LoadMapRegistry()
	if err != nil {
		return err
	}

	def := registry.GetByID(g.cfg.MapID)
	if def == nil {
		return fmt.Errorf("unknown map %q", g.cfg.MapID)
	}

	grid, err := world.ParseRows(def.Rows)
	if err != nil {
		return fmt.Errorf("map %q: %w", def.ID, err)
	}
	if grid.IsWall(int(def.SpawnX), int(def.SpawnY)) {
		return fmt.Errorf("map %q: spawn point (%g,%g) is inside a wall", def.ID, def.SpawnX, def.SpawnY)
	}

	g.grid = grid
	g.renderer = render.NewRenderer(grid, g.cfg.FOV)
	g.player = player.New(def.SpawnX, def.SpawnY, def.SpawnAngle)

	if def.Palette != nil {
		palette, err := buildPalette(def.Palette)
		if err != nil {
			return fmt.Errorf("map %q: %w", def.ID, err)
		}
		g.renderer.SetPalette(palette)
	}

	span.SetAttributes(
		attribute.String("map.id", def.ID),
		attribute.Int("map.width", grid.Width),
		attribute.Int("map.height", grid.Height),
		attribute.Float64("player.spawn_x", def.SpawnX),
		attribute.Float64("player.spawn_y", def.SpawnY),
	)
	return nil
}

// buildPalette converts a map's hex palette into renderer colors.
func buildPalette(def *data.PaletteDef) (render.Palette, error) {
	var palette render.Palette
	fields := []struct {
		hex string
		dst *colorful.Color
	}{
		{def.WallNear, &palette.WallNear},
		{def.WallFar, &palette.WallFar},
		{def.CeilingNear, &palette.CeilingNear},
		{def.CeilingFar, &palette.CeilingFar},
		{def.FloorNear, &palette.FloorNear},
		{def.FloorFar, &palette.FloorFar},
	}
	for _, f := range fields {
		c, err := data.ParseHexColor(f.hex)
		if err != nil {
			return palette, fmt.Errorf("invalid palette: %w", err)
		}
		*f.dst = c
	}
	return palette, nil
}

// drainInput applies every event already queued without blocking, so a
// quiet keyboard never stalls the frame rate.
func (g *Game) drainInput(events <-chan tcell.Event) {
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				g.apply(decodeKey(ev))
			case *tcell.EventResize:
				g.screen.Sync()
			}
		default:
			return
		}
	}
}

// apply executes a single command against the player state.
func (g *Game) apply(cmd Command) {
	switch cmd {
	case CommandMoveForward:
		g.player.MoveForward(g.grid, g.cfg.MoveSpeed)
	case CommandMoveBackward:
		g.player.MoveForward(g.grid, -g.cfg.MoveSpeed)
	case CommandStrafeLeft:
		g.player.Strafe(g.grid, -g.cfg.MoveSpeed)
	case CommandStrafeRight:
		g.player.Strafe(g.grid, g.cfg.MoveSpeed)
	case CommandRotateLeft:
		g.player.Rotate(-g.cfg.RotateSpeed)
	case CommandRotateRight:
		g.player.Rotate(g.cfg.RotateSpeed)
	case CommandQuit:
		g.running = false
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
