package chip8

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/input"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
	"github.com/valerio/go-chip8/chip8/timing"
)

// Run drives the frame loop until the backend or the user asks to quit:
// run a frame, hand it to the backend, apply the returned input events and
// wait for the next frame. The backend is initialised and cleaned up here.
//
// In headless mode a VM crash ends the loop with the crash error. Otherwise
// the crashed frame stays on screen until the user resets or quits.
func (e *Emulator) Run(be backend.Backend, limiter timing.Limiter) error {
	if limiter == nil {
		limiter = timing.NewNoOpLimiter()
	}
	if stopper, ok := limiter.(interface{ Stop() }); ok {
		defer stopper.Stop()
	}

	if err := be.Init(e.backendConfig()); err != nil {
		return fmt.Errorf("failed to initialise backend: %w", err)
	}
	defer func() {
		if err := be.Cleanup(); err != nil {
			slog.Warn("Backend cleanup failed", "error", err)
		}
	}()

	running := true
	manager := e.newInputManager(be, limiter, &running)

	for running {
		if err := e.RunUntilFrame(); err != nil {
			if e.config.Headless {
				return err
			}
		}

		events, err := be.Update(e.GetCurrentFrame())
		if err != nil {
			return fmt.Errorf("backend update failed: %w", err)
		}

		for _, evt := range events {
			manager.Trigger(evt.Action, evt.Type)
		}

		if e.state == StateStopped {
			running = false
		}
		if !running {
			break
		}

		limiter.WaitForNextFrame()
	}

	e.Stop()
	slog.Info("Emulation stopped", "frames", e.frameCount)
	return nil
}

func (e *Emulator) backendConfig() backend.BackendConfig {
	title := "CHIP-8"
	if e.config.ROMPath != "" {
		name := filepath.Base(e.config.ROMPath)
		title = fmt.Sprintf("CHIP-8 - %s", strings.TrimSuffix(name, filepath.Ext(name)))
	}

	return backend.BackendConfig{
		Title:         title,
		Scale:         e.config.Scale,
		ShowDebug:     e.config.Debug,
		DebugProvider: e,
	}
}

func (e *Emulator) newInputManager(be backend.Backend, limiter timing.Limiter, running *bool) *input.Manager {
	manager := input.NewManager(e.latch)

	manager.On(action.EmulatorQuit, event.Press, func() {
		*running = false
	})
	manager.On(action.EmulatorPauseToggle, event.Press, func() {
		e.TogglePause()
		limiter.Reset()
	})
	manager.On(action.EmulatorStep, event.Press, func() {
		if err := e.Step(); err != nil && e.config.Headless {
			*running = false
		}
	})
	manager.On(action.EmulatorReset, event.Press, func() {
		if err := e.Reset(); err != nil {
			slog.Error("Reset failed", "error", err)
			return
		}
		limiter.Reset()
	})

	if handler, ok := be.(backend.ActionHandler); ok {
		for _, act := range []action.Action{
			action.EmulatorSnapshot,
			action.EmulatorDebugToggle,
			action.DebugLogLevelIncrease,
			action.DebugLogLevelDecrease,
		} {
			act := act
			manager.On(act, event.Press, func() {
				handler.HandleAction(act)
			})
		}
	}

	return manager
}
