package chip8

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/backend/headless"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
	"github.com/valerio/go-chip8/chip8/timing"
	"github.com/valerio/go-chip8/chip8/video"
	"github.com/valerio/go-chip8/chip8/vm"
)

// mockBackend returns scripted events, one batch per Update call, and asks
// to quit once the script runs out.
type mockBackend struct {
	script      [][]backend.InputEvent
	config      backend.BackendConfig
	initialized bool
	cleanedUp   bool
	updateCalls int
	frames      []*video.FrameBuffer
	handled     []action.Action
	updateErr   error
}

func (m *mockBackend) Init(config backend.BackendConfig) error {
	m.config = config
	m.initialized = true
	return nil
}

func (m *mockBackend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	m.updateCalls++
	m.frames = append(m.frames, frame)
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if m.updateCalls <= len(m.script) {
		return m.script[m.updateCalls-1], nil
	}
	return []backend.InputEvent{press(action.EmulatorQuit)}, nil
}

func (m *mockBackend) Cleanup() error {
	m.cleanedUp = true
	return nil
}

func (m *mockBackend) HandleAction(act action.Action) {
	m.handled = append(m.handled, act)
}

var _ backend.Backend = (*mockBackend)(nil)
var _ backend.ActionHandler = (*mockBackend)(nil)

func press(act action.Action) backend.InputEvent {
	return backend.InputEvent{Action: act, Type: event.Press}
}

func release(act action.Action) backend.InputEvent {
	return backend.InputEvent{Action: act, Type: event.Release}
}

func TestRun_EventFlow(t *testing.T) {
	tests := []struct {
		name           string
		script         [][]backend.InputEvent
		expectedCalls  int
		expectedFrames uint64
	}{
		{
			name:           "quit event stops loop",
			script:         [][]backend.InputEvent{{press(action.EmulatorQuit)}},
			expectedCalls:  1,
			expectedFrames: 1,
		},
		{
			name: "keypad events are passed through",
			script: [][]backend.InputEvent{
				{press(action.KeyA), release(action.KeyA), press(action.KeyB), press(action.EmulatorQuit)},
			},
			expectedCalls:  1,
			expectedFrames: 1,
		},
		{
			name:           "no events runs until quit",
			script:         [][]backend.InputEvent{{}, {}, {}, {}},
			expectedCalls:  5,
			expectedFrames: 5,
		},
		{
			name:           "pause stops frames from advancing",
			script:         [][]backend.InputEvent{{press(action.EmulatorPauseToggle)}, {}, {}},
			expectedCalls:  4,
			expectedFrames: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEmulator(t, testConfig(10), counterLoop...)
			mock := &mockBackend{script: tt.script}

			require.NoError(t, e.Run(mock, timing.NewNoOpLimiter()))

			assert.True(t, mock.initialized)
			assert.True(t, mock.cleanedUp)
			assert.Equal(t, tt.expectedCalls, mock.updateCalls)
			assert.Equal(t, tt.expectedFrames, e.FrameCount())
			assert.Equal(t, StateStopped, e.State())
		})
	}
}

func TestRun_KeypadReachesLatch(t *testing.T) {
	e := newTestEmulator(t, testConfig(10), counterLoop...)
	mock := &mockBackend{script: [][]backend.InputEvent{{press(action.Key7)}}}

	require.NoError(t, e.Run(mock, nil))

	key, pressed := e.Latch().Read()
	assert.True(t, pressed)
	assert.Equal(t, uint8(7), key)
}

func TestRun_KeyWaitResumesOnPress(t *testing.T) {
	// LD V3, K / spin
	e := newTestEmulator(t, testConfig(10), 0xF30A, 0x1202)
	mock := &mockBackend{script: [][]backend.InputEvent{{}, {press(action.Key9)}, {}}}

	require.NoError(t, e.Run(mock, nil))

	data := e.ExtractDebugData()
	assert.Equal(t, uint8(9), data.CPU.V[3])
	assert.Equal(t, uint16(0x202), data.CPU.PC)
}

func TestRun_BackendActionsAreForwarded(t *testing.T) {
	e := newTestEmulator(t, testConfig(10), counterLoop...)
	mock := &mockBackend{script: [][]backend.InputEvent{
		{press(action.EmulatorSnapshot), press(action.EmulatorDebugToggle), press(action.DebugLogLevelIncrease)},
	}}

	require.NoError(t, e.Run(mock, nil))

	assert.Equal(t, []action.Action{
		action.EmulatorSnapshot,
		action.EmulatorDebugToggle,
		action.DebugLogLevelIncrease,
	}, mock.handled)
}

func TestRun_BackendConfig(t *testing.T) {
	cfg := testConfig(10)
	cfg.ROMPath = "/roms/IBM Logo.ch8"
	cfg.Debug = true
	cfg.Scale = 12
	e := newTestEmulator(t, cfg, counterLoop...)
	mock := &mockBackend{}

	require.NoError(t, e.Run(mock, nil))

	assert.Equal(t, "CHIP-8 - IBM Logo", mock.config.Title)
	assert.Equal(t, 12, mock.config.Scale)
	assert.True(t, mock.config.ShowDebug)
	assert.Same(t, e, mock.config.DebugProvider)
}

func TestRun_InteractiveCrashKeepsRendering(t *testing.T) {
	e := newTestEmulator(t, testConfig(10), 0xF355)
	mock := &mockBackend{script: [][]backend.InputEvent{{}, {}}}

	require.NoError(t, e.Run(mock, nil))

	assert.Equal(t, 3, mock.updateCalls)
	assert.ErrorIs(t, e.Err(), vm.ErrUnsupportedInstruction)
}

func TestRun_ResetAfterCrash(t *testing.T) {
	e := newTestEmulator(t, testConfig(10), 0xF355)
	mock := &mockBackend{script: [][]backend.InputEvent{{press(action.EmulatorReset)}}}

	require.NoError(t, e.Run(mock, nil))

	// the frame after the reset crashes again
	assert.Equal(t, 2, mock.updateCalls)
	assert.Equal(t, uint64(1), e.ExtractDebugData().CPU.Cycles)
}

func TestRun_HeadlessCrashReturnsError(t *testing.T) {
	cfg := testConfig(10)
	cfg.Headless = true
	cfg.Frames = 10
	e := newTestEmulator(t, cfg, 0x00E0, 0xF355)
	mock := &mockBackend{}

	err := e.Run(mock, nil)
	assert.ErrorIs(t, err, vm.ErrUnsupportedInstruction)
	assert.Zero(t, mock.updateCalls)
	assert.True(t, mock.cleanedUp)
}

func TestRun_UpdateError(t *testing.T) {
	e := newTestEmulator(t, testConfig(10), counterLoop...)
	boom := errors.New("screen gone")
	mock := &mockBackend{updateErr: boom}

	err := e.Run(mock, nil)
	assert.ErrorIs(t, err, boom)
	assert.True(t, mock.cleanedUp)
}

func TestRun_Headless(t *testing.T) {
	cfg := testConfig(10)
	cfg.Headless = true
	cfg.Frames = 5
	e := newTestEmulator(t, cfg, counterLoop...)
	hb := headless.New(cfg.Frames, headless.SnapshotConfig{})

	require.NoError(t, e.Run(hb, timing.NewNoOpLimiter()))

	assert.Equal(t, 5, hb.FrameCount())
	assert.Equal(t, uint64(5), e.FrameCount())
	assert.Equal(t, uint64(50), e.ExtractDebugData().CPU.Cycles)
}

func TestRun_HeadlessSnapshots(t *testing.T) {
	cfg := testConfig(4)
	cfg.Headless = true
	cfg.Frames = 3
	e := newTestEmulator(t, cfg, 0x6000, 0xF029, 0xD005, 0x1206)

	snapshots, err := headless.CreateSnapshotConfig(2, t.TempDir(), "glyph.ch8")
	require.NoError(t, err)
	hb := headless.New(cfg.Frames, snapshots)

	require.NoError(t, e.Run(hb, nil))
	assert.Len(t, hb.Snapshots(), 2)
}
