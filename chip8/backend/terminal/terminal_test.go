package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/debug"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
	"github.com/valerio/go-chip8/chip8/video"
)

type stubProvider struct {
	data *debug.CompleteDebugData
}

func (s *stubProvider) ExtractDebugData() *debug.CompleteDebugData { return s.data }

func newTestBackend(t *testing.T, config backend.BackendConfig) (*Backend, tcell.SimulationScreen, *time.Time) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	b := NewWithScreen(screen)
	now := time.Unix(1_000, 0)
	b.now = func() time.Time { return now }

	require.NoError(t, b.Init(config))
	screen.SetSize(120, 40)
	t.Cleanup(func() { _ = b.Cleanup() })

	return b, screen, &now
}

func actions(events []backend.InputEvent, typ event.Type) []action.Action {
	var out []action.Action
	for _, e := range events {
		if e.Type == typ {
			out = append(out, e.Action)
		}
	}
	return out
}

func TestKeypadPressHoldRelease(t *testing.T) {
	b, screen, now := newTestBackend(t, backend.BackendConfig{})
	frame := video.NewFrameBuffer()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	events, err := b.Update(frame)
	require.NoError(t, err)
	assert.Equal(t, []action.Action{action.Key4}, actions(events, event.Press))

	*now = now.Add(keyTimeout / 2)
	events, err = b.Update(frame)
	require.NoError(t, err)
	assert.Equal(t, []action.Action{action.Key4}, actions(events, event.Hold))

	*now = now.Add(keyTimeout)
	events, err = b.Update(frame)
	require.NoError(t, err)
	assert.Equal(t, []action.Action{action.Key4}, actions(events, event.Release))

	events, err = b.Update(frame)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestKeypadNewestKeyWins(t *testing.T) {
	b, screen, _ := newTestBackend(t, backend.BackendConfig{})
	frame := video.NewFrameBuffer()

	screen.InjectKey(tcell.KeyRune, '1', tcell.ModNone)
	_, err := b.Update(frame)
	require.NoError(t, err)

	screen.InjectKey(tcell.KeyRune, 'V', tcell.ModShift)
	events, err := b.Update(frame)
	require.NoError(t, err)
	assert.Equal(t, []action.Action{action.KeyF}, actions(events, event.Press))
	assert.Equal(t, []action.Action{action.Key1}, actions(events, event.Release))
}

func TestEmulatorKeysAreQueued(t *testing.T) {
	b, screen, _ := newTestBackend(t, backend.BackendConfig{})

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyF5, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	events, err := b.Update(video.NewFrameBuffer())
	require.NoError(t, err)

	assert.Equal(t, []action.Action{action.EmulatorPauseToggle, action.EmulatorReset, action.EmulatorStep},
		actions(events, event.Press))
}

func TestEscapeQuits(t *testing.T) {
	b, screen, _ := newTestBackend(t, backend.BackendConfig{})

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	events, err := b.Update(video.NewFrameBuffer())
	require.NoError(t, err)
	assert.Contains(t, actions(events, event.Press), action.EmulatorQuit)
	assert.False(t, b.running)
}

func TestRenderFrame(t *testing.T) {
	b, screen, _ := newTestBackend(t, backend.BackendConfig{Title: "PONG"})

	frame := video.NewFrameBuffer()
	frame.SetPixel(0, 0, true)
	frame.SetPixel(0, 1, true)
	frame.SetPixel(1, 0, true)
	frame.SetPixel(2, 1, true)

	_, err := b.Update(frame)
	require.NoError(t, err)

	cell := func(x, y int) rune {
		r, _, _, _ := screen.GetContent(x, y)
		return r
	}
	assert.Equal(t, '█', cell(0, 1))
	assert.Equal(t, '▀', cell(1, 1))
	assert.Equal(t, '▄', cell(2, 1))
	assert.Equal(t, ' ', cell(3, 1))
	assert.Equal(t, 'P', cell(2, 0))
}

func TestRenderDebugPanels(t *testing.T) {
	cpu := &debug.CPUState{PC: 0x200, I: 0x2AB}
	cpu.V[0xA] = 0x42
	memory := make([]byte, 0x1000)
	memory[0x200], memory[0x201] = 0x00, 0xE0

	provider := &stubProvider{data: &debug.CompleteDebugData{
		CPU:           cpu,
		Memory:        &debug.MemorySnapshot{Bytes: memory},
		DebuggerState: debug.DebuggerPaused,
	}}

	b, screen, _ := newTestBackend(t, backend.BackendConfig{ShowDebug: true, DebugProvider: provider})
	_, err := b.Update(video.NewFrameBuffer())
	require.NoError(t, err)

	cells, w, _ := screen.GetContents()
	line := func(y int) string {
		var out []rune
		for x := width + 3; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) > 0 {
				out = append(out, c.Runes[0])
			} else {
				out = append(out, ' ')
			}
		}
		return string(out)
	}

	assert.Contains(t, line(1), "Status: PAUSED")
	assert.Contains(t, line(2), "PC: 0x200  I: 0x2AB")
	found := false
	for y := registerHeight + 2; y < registerHeight+2+disasmHeight; y++ {
		if l := line(y); strings.Contains(l, "0x200") && strings.Contains(l, "CLS") {
			found = true
		}
	}
	assert.True(t, found, "current instruction shown")
}

func TestHandleAction(t *testing.T) {
	b, _, _ := newTestBackend(t, backend.BackendConfig{})

	b.HandleAction(action.EmulatorDebugToggle)
	assert.True(t, b.config.ShowDebug)
	b.HandleAction(action.EmulatorDebugToggle)
	assert.False(t, b.config.ShowDebug)

	b.HandleAction(action.DebugLogLevelIncrease)
	assert.Equal(t, "DEBUG", b.logLevel.String())
	b.HandleAction(action.DebugLogLevelIncrease)
	assert.Equal(t, "DEBUG", b.logLevel.String(), "already at the lowest level")

	for i := 0; i < 5; i++ {
		b.HandleAction(action.DebugLogLevelDecrease)
	}
	assert.Equal(t, "ERROR", b.logLevel.String())
}

func TestTerminalImplementsBackend(t *testing.T) {
	var _ backend.Backend = (*Backend)(nil)
	var _ backend.ActionHandler = (*Backend)(nil)
}
