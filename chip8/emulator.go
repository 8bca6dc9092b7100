package chip8

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/valerio/go-chip8/chip8/audio"
	"github.com/valerio/go-chip8/chip8/debug"
	"github.com/valerio/go-chip8/chip8/input"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/video"
	"github.com/valerio/go-chip8/chip8/vm"
)

// State is the run state of an Emulator.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateCrashed
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCrashed:
		return "crashed"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Emulator drives a VM one frame at a time and owns the run state around it:
// pausing, single stepping, resetting and crashing on fatal VM errors.
type Emulator struct {
	vm     *vm.VM
	image  []byte
	latch  *input.Latch
	config Config
	opts   []vm.Option

	state    State
	crashErr error
	stepping bool

	frame      *video.FrameBuffer
	frameCount uint64

	sink     audio.Sink
	crashOut io.Writer
}

// NewWithFile loads the ROM at path and creates an emulator for it.
func NewWithFile(path string, latch *input.Latch, cfg Config, opts ...vm.Option) (*Emulator, error) {
	image, err := LoadROM(path)
	if err != nil {
		return nil, err
	}

	slog.Info("Loaded ROM", "path", path)
	return New(image, latch, cfg, opts...)
}

// New creates an emulator from a full memory image. A nil latch gets a fresh
// one. opts are passed to the VM after the ones derived from cfg.
func New(image []byte, latch *input.Latch, cfg Config, opts ...vm.Option) (*Emulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if latch == nil {
		latch = input.NewLatch()
	}

	e := &Emulator{
		image:  append([]byte(nil), image...),
		latch:  latch,
		config: cfg,
		opts:   opts,
		state:  StateRunning,
		frame:  video.NewFrameBuffer(),
		sink:   audio.NewBeeper(nil),
	}

	machine, err := e.newVM()
	if err != nil {
		return nil, err
	}
	e.vm = machine

	return e, nil
}

// newVM builds a VM from the loaded image. A configured seed is applied
// fresh every time so a reset replays the same random sequence.
func (e *Emulator) newVM() (*vm.VM, error) {
	var opts []vm.Option
	if e.config.Seed != 0 {
		opts = append(opts, vm.WithRand(rand.New(rand.NewSource(e.config.Seed))))
	}
	opts = append(opts, e.opts...)

	return vm.New(e.image, e.latch, opts...)
}

// SetAudioSink replaces the sink receiving tone signals. nil mutes audio.
func (e *Emulator) SetAudioSink(sink audio.Sink) {
	e.sink = sink
}

// SetCrashWriter sets where the crash dump is written in addition to the log.
func (e *Emulator) SetCrashWriter(w io.Writer) {
	e.crashOut = w
}

// RunUntilFrame runs CyclesPerFrame instructions and refreshes the current
// frame. It does nothing unless the emulator is running. A VM error crashes
// the emulator and is returned.
func (e *Emulator) RunUntilFrame() error {
	if e.state != StateRunning {
		return nil
	}

	for i := 0; i < e.config.CyclesPerFrame; i++ {
		if err := e.cycle(); err != nil {
			return err
		}
	}

	e.frameCount++
	e.refreshFrame()
	return nil
}

func (e *Emulator) cycle() error {
	signal, err := e.vm.Cycle()
	audio.Dispatch(e.sink, signal)
	if err != nil {
		e.crash(err)
		return fmt.Errorf("emulator crashed: %w", err)
	}
	return nil
}

func (e *Emulator) refreshFrame() {
	e.frame = video.FromPixels(e.vm.GetFramebuffer())
}

func (e *Emulator) crash(err error) {
	e.state = StateCrashed
	e.crashErr = err
	audio.Dispatch(e.sink, audio.SignalStop)

	var dump strings.Builder
	_ = debug.Dump(&dump, e.ExtractDebugData())

	slog.Error("VM crashed", "error", err, "pc", fmt.Sprintf("0x%03X", e.vm.GetProgramCounter()))
	slog.Debug("Crash dump", "dump", dump.String())

	if e.crashOut != nil {
		if _, werr := io.WriteString(e.crashOut, dump.String()); werr != nil {
			slog.Warn("Failed to write crash dump", "error", werr)
		}
	}

	e.refreshFrame()
}

// TogglePause switches between running and paused. Crashed and stopped
// emulators are left alone.
func (e *Emulator) TogglePause() {
	switch e.state {
	case StateRunning:
		e.state = StatePaused
		audio.Dispatch(e.sink, audio.SignalStop)
		slog.Info("Emulation paused", "pc", fmt.Sprintf("0x%03X", e.vm.GetProgramCounter()))
	case StatePaused:
		e.state = StateRunning
		slog.Info("Emulation resumed")
	}
}

// Step executes a single instruction while paused.
func (e *Emulator) Step() error {
	if e.state != StatePaused {
		return nil
	}

	e.stepping = true
	defer func() { e.stepping = false }()

	pc := e.vm.GetProgramCounter()
	if err := e.cycle(); err != nil {
		return err
	}
	e.refreshFrame()

	slog.Debug("Stepped", "pc", fmt.Sprintf("0x%03X", pc), "next", fmt.Sprintf("0x%03X", e.vm.GetProgramCounter()))
	return nil
}

// Reset reloads the memory image and starts running again. It also
// recovers a crashed emulator.
func (e *Emulator) Reset() error {
	machine, err := e.newVM()
	if err != nil {
		return err
	}

	audio.Dispatch(e.sink, audio.SignalStop)
	e.latch.Release()
	e.vm = machine
	e.state = StateRunning
	e.crashErr = nil
	e.frameCount = 0
	e.frame = video.NewFrameBuffer()

	slog.Info("Emulator reset")
	return nil
}

// Stop halts the emulator for good and silences audio.
func (e *Emulator) Stop() {
	e.state = StateStopped
	audio.Dispatch(e.sink, audio.SignalStop)
}

// HandleAction applies an action directly, bypassing the input manager's
// debouncing. Keypad actions are written to the latch.
func (e *Emulator) HandleAction(act action.Action, pressed bool) {
	if code, ok := act.KeyCode(); ok {
		if pressed {
			if err := e.latch.Press(code); err != nil {
				slog.Warn("Dropped key press", "key", code, "error", err)
			}
		} else {
			e.latch.ReleaseKey(code)
		}
		return
	}

	if !pressed {
		return
	}

	switch act {
	case action.EmulatorPauseToggle:
		e.TogglePause()
	case action.EmulatorStep:
		if err := e.Step(); err != nil {
			slog.Error("Step failed", "error", err)
		}
	case action.EmulatorReset:
		if err := e.Reset(); err != nil {
			slog.Error("Reset failed", "error", err)
		}
	case action.EmulatorQuit:
		e.Stop()
	}
}

// GetCurrentFrame returns the frame produced by the last RunUntilFrame or Step.
func (e *Emulator) GetCurrentFrame() *video.FrameBuffer {
	return e.frame
}

// ExtractDebugData snapshots the VM for debug displays and crash dumps.
func (e *Emulator) ExtractDebugData() *debug.CompleteDebugData {
	data := debug.Extract(e.vm, e.latch, e.debuggerState())
	data.Err = e.crashErr
	return data
}

func (e *Emulator) debuggerState() debug.DebuggerState {
	switch e.state {
	case StatePaused:
		if e.stepping {
			return debug.DebuggerStepInstruction
		}
		return debug.DebuggerPaused
	case StateCrashed:
		return debug.DebuggerCrashed
	case StateStopped:
		return debug.DebuggerStopped
	}
	return debug.DebuggerRunning
}

// State returns the current run state.
func (e *Emulator) State() State {
	return e.state
}

// Err returns the error that crashed the emulator, if any.
func (e *Emulator) Err() error {
	return e.crashErr
}

// FrameCount returns the number of frames run since the last reset.
func (e *Emulator) FrameCount() uint64 {
	return e.frameCount
}

// Latch returns the keypad latch shared with the VM.
func (e *Emulator) Latch() *input.Latch {
	return e.latch
}
