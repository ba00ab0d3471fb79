package game

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the tunable parameters of a session.
type Config struct {
	// MapID selects a map from the embedded registry.
	MapID string
	// TickRate is the number of simulation ticks per second.
	TickRate int
	// FOV is the camera plane half-width (0.66 gives roughly a 66 degree view).
	FOV float64
	// MoveSpeed is the distance walked per movement tick, in cells.
	MoveSpeed float64
	// RotateSpeed is the turn per rotation tick, in radians.
	RotateSpeed float64
}

// DefaultConfig returns a Config with the standard settings.
func DefaultConfig() Config {
	return Config{
		MapID:       "arena",
		TickRate:    60,
		FOV:         0.66,
		MoveSpeed:   0.05,
		RotateSpeed: 0.03,
	}
}

// FromEnv returns the default config with any RAYCAST_* environment
// variables applied on top. A value that does not parse, or that would make
// the loop degenerate, is a configuration error.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("RAYCAST_MAP"); v != "" {
		cfg.MapID = v
	}
	if v := os.Getenv("RAYCAST_TICK_RATE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid RAYCAST_TICK_RATE %q: %w", v, err)
		}
		cfg.TickRate = n
	}
	if v := os.Getenv("RAYCAST_FOV"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid RAYCAST_FOV %q: %w", v, err)
		}
		cfg.FOV = f
	}
	if v := os.Getenv("RAYCAST_MOVE_SPEED"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid RAYCAST_MOVE_SPEED %q: %w", v, err)
		}
		cfg.MoveSpeed = f
	}
	if v := os.Getenv("RAYCAST_ROTATE_SPEED"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid RAYCAST_ROTATE_SPEED %q: %w", v, err)
		}
		cfg.RotateSpeed = f
	}

	return cfg, cfg.Validate()
}

// Validate reports the first setting that would break the frame loop.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.FOV <= 0 {
		return fmt.Errorf("field of view must be positive, got %g", c.FOV)
	}
	if c.MoveSpeed <= 0 {
		return fmt.Errorf("move speed must be positive, got %g", c.MoveSpeed)
	}
	if c.RotateSpeed <= 0 {
		return fmt.Errorf("rotate speed must be positive, got %g", c.RotateSpeed)
	}
	return nil
}
