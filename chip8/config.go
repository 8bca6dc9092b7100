package chip8

import (
	"fmt"
)

// Backend names accepted by Config.Backend.
const (
	BackendTerminal = "terminal"
	BackendSDL2     = "sdl2"
)

// Limiter names accepted by Config.Limiter.
const (
	LimiterAdaptive = "adaptive"
	LimiterTicker   = "ticker"
	LimiterNone     = "none"
)

// MaxCyclesPerFrame bounds the instruction rate to something a frame can
// plausibly fit.
const MaxCyclesPerFrame = 10000

// Config holds the emulator and front end settings.
type Config struct {
	ROMPath string

	// CyclesPerFrame is the number of instructions run per 60 Hz frame.
	CyclesPerFrame int
	// Seed seeds the CXNN random source, 0 picks a time based seed.
	Seed int64

	Headless         bool
	Frames           int
	SnapshotInterval int
	SnapshotDir      string

	Backend string
	Limiter string
	Scale   int
	Debug   bool
	Audio   bool
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		CyclesPerFrame: 10,
		Backend:        BackendTerminal,
		Limiter:        LimiterAdaptive,
		Scale:          10,
		Audio:          true,
	}
}

// Validate checks the config for values the emulator can't run with.
func (c Config) Validate() error {
	if c.CyclesPerFrame <= 0 || c.CyclesPerFrame > MaxCyclesPerFrame {
		return fmt.Errorf("%w: cycles per frame must be in [1, %d], got %d", ErrInvalidConfig, MaxCyclesPerFrame, c.CyclesPerFrame)
	}
	if c.Headless && c.Frames <= 0 {
		return fmt.Errorf("%w: headless mode requires a positive frame count", ErrInvalidConfig)
	}
	if c.SnapshotInterval < 0 {
		return fmt.Errorf("%w: snapshot interval can't be negative", ErrInvalidConfig)
	}
	if !c.Headless {
		switch c.Backend {
		case BackendTerminal, BackendSDL2:
		default:
			return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
		}
	}
	switch c.Limiter {
	case LimiterAdaptive, LimiterTicker, LimiterNone:
	default:
		return fmt.Errorf("%w: unknown limiter %q", ErrInvalidConfig, c.Limiter)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive", ErrInvalidConfig)
	}
	return nil
}
