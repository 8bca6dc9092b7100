package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/go-chip8/chip8"
	"github.com/valerio/go-chip8/chip8/audio"
	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/backend/headless"
	"github.com/valerio/go-chip8/chip8/backend/sdl2"
	"github.com/valerio/go-chip8/chip8/backend/terminal"
	"github.com/valerio/go-chip8/chip8/timing"
)

func main() {
	defaults := chip8.DefaultConfig()

	app := cli.NewApp()
	app.Name = "chip8"
	app.Description = "A CHIP-8 interpreter"
	app.Usage = "chip8 [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "rom",
			Usage:  "Path to the ROM file",
			EnvVar: "CHIP8_ROM",
		},
		cli.BoolFlag{
			Name:   "headless",
			Usage:  "Run the emulator without a display",
			EnvVar: "CHIP8_HEADLESS",
		},
		cli.IntFlag{
			Name:   "frames",
			Usage:  "Number of frames to run in headless mode (required for headless)",
			EnvVar: "CHIP8_FRAMES",
		},
		cli.IntFlag{
			Name:   "cycles-per-frame",
			Usage:  "Instructions executed per 60 Hz frame",
			Value:  defaults.CyclesPerFrame,
			EnvVar: "CHIP8_CYCLES_PER_FRAME",
		},
		cli.Int64Flag{
			Name:   "seed",
			Usage:  "Seed for the random number instruction (0 = time based)",
			EnvVar: "CHIP8_SEED",
		},
		cli.IntFlag{
			Name:   "snapshot-interval",
			Usage:  "Save PNG snapshots every N frames in headless mode (0 = disabled)",
			EnvVar: "CHIP8_SNAPSHOT_INTERVAL",
		},
		cli.StringFlag{
			Name:   "snapshot-dir",
			Usage:  "Directory to save snapshots (default: temp directory)",
			EnvVar: "CHIP8_SNAPSHOT_DIR",
		},
		cli.StringFlag{
			Name:   "backend",
			Usage:  "Display backend: terminal or sdl2",
			Value:  defaults.Backend,
			EnvVar: "CHIP8_BACKEND",
		},
		cli.StringFlag{
			Name:   "limiter",
			Usage:  "Frame limiter: adaptive, ticker or none",
			Value:  defaults.Limiter,
			EnvVar: "CHIP8_LIMITER",
		},
		cli.IntFlag{
			Name:   "scale",
			Usage:  "Window scale factor for the sdl2 backend",
			Value:  defaults.Scale,
			EnvVar: "CHIP8_SCALE",
		},
		cli.BoolFlag{
			Name:   "debug",
			Usage:  "Show debug panels and enable debug logging",
			EnvVar: "CHIP8_DEBUG",
		},
		cli.BoolTFlag{
			Name:   "audio",
			Usage:  "Play the sound timer tone (use --audio=false to mute)",
			EnvVar: "CHIP8_AUDIO",
		},
	}
	app.Action = runEmulator

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func configFromContext(c *cli.Context) (chip8.Config, error) {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() == 0 {
			cli.ShowAppHelp(c)
			return chip8.Config{}, errors.New("no ROM path provided")
		}
		romPath = c.Args().Get(0)
	}

	cfg := chip8.Config{
		ROMPath:          romPath,
		CyclesPerFrame:   c.Int("cycles-per-frame"),
		Seed:             c.Int64("seed"),
		Headless:         c.Bool("headless"),
		Frames:           c.Int("frames"),
		SnapshotInterval: c.Int("snapshot-interval"),
		SnapshotDir:      c.String("snapshot-dir"),
		Backend:          c.String("backend"),
		Limiter:          c.String("limiter"),
		Scale:            c.Int("scale"),
		Debug:            c.Bool("debug"),
		Audio:            c.BoolT("audio"),
	}
	if cfg.Headless {
		cfg.Limiter = chip8.LimiterNone
	}

	return cfg, cfg.Validate()
}

func runEmulator(c *cli.Context) error {
	cfg, err := configFromContext(c)
	if err != nil {
		return err
	}

	if cfg.Headless {
		level := slog.LevelInfo
		if cfg.Debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	emu, err := chip8.NewWithFile(cfg.ROMPath, nil, cfg)
	if err != nil {
		return err
	}

	if cfg.Headless {
		return runHeadless(emu, cfg)
	}

	be, err := newBackend(cfg.Backend)
	if err != nil {
		return err
	}

	if cfg.Audio {
		beeper := newBeeper()
		defer beeper.Close()
		emu.SetAudioSink(beeper)
	} else {
		emu.SetAudioSink(nil)
	}

	return emu.Run(be, timing.New(cfg.Limiter))
}

func runHeadless(emu *chip8.Emulator, cfg chip8.Config) error {
	snapshots, err := headless.CreateSnapshotConfig(cfg.SnapshotInterval, cfg.SnapshotDir, cfg.ROMPath)
	if err != nil {
		return err
	}

	emu.SetCrashWriter(os.Stderr)
	return emu.Run(headless.New(cfg.Frames, snapshots), timing.NewNoOpLimiter())
}

func newBackend(name string) (backend.Backend, error) {
	switch name {
	case chip8.BackendTerminal:
		return terminal.New(), nil
	case chip8.BackendSDL2:
		return sdl2.New(), nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q", chip8.ErrInvalidConfig, name)
}

// newBeeper opens the SDL audio device, falling back to a silent beeper
// that still tracks the tone state.
func newBeeper() *audio.Beeper {
	device, err := audio.NewSDLDevice()
	if err != nil {
		slog.Warn("Audio disabled", "error", err)
		return audio.NewBeeper(nil)
	}
	return audio.NewBeeper(device)
}
