package backend

import (
	"github.com/valerio/go-chip8/chip8/debug"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
	"github.com/valerio/go-chip8/chip8/video"
)

// Backend represents a complete emulator front end (rendering + input).
// Backends are responsible for:
// - Rendering frames to their specific output (terminal, SDL window, etc.)
// - Translating platform-specific input into InputEvents
// - Handling backend-specific features (snapshots, debug panels)
type Backend interface {
	// Init configures the backend. It must be called before Update.
	Init(config BackendConfig) error

	// Update renders the provided frame, polls the platform for input and
	// returns the input events collected since the previous call.
	Update(frame *video.FrameBuffer) ([]InputEvent, error)

	// Cleanup releases resources when shutting down
	Cleanup() error
}

// ActionHandler is implemented by backends that react to actions themselves,
// e.g. toggling their debug panel or taking a snapshot of the last frame.
type ActionHandler interface {
	HandleAction(act action.Action)
}

// DebugDataProvider is the source of debug panel data, usually the emulator.
type DebugDataProvider interface {
	ExtractDebugData() *debug.CompleteDebugData
}

// InputEvent is an action produced by a backend.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}

// BackendConfig holds configuration for backends
type BackendConfig struct {
	Title         string
	Scale         int
	ShowDebug     bool              // Backends may ignore unsupported features
	DebugProvider DebugDataProvider // Optional, feeds register/disassembly panels
}
