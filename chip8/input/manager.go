package input

import (
	"log/slog"
	"time"

	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
)

const (
	// debounceDuration is the minimum time between debounced events
	debounceDuration = 300 * time.Millisecond
)

// Manager handles input actions and their associated callbacks.
// Keypad actions are written to the latch, every other action is
// dispatched to the callbacks registered with On.
type Manager struct {
	handlers      map[action.Action]map[event.Type][]func()
	lastTriggered map[action.Action]map[event.Type]time.Time
	latch         *Latch
	now           func() time.Time
}

func NewManager(l *Latch) *Manager {
	return &Manager{
		handlers:      make(map[action.Action]map[event.Type][]func()),
		lastTriggered: make(map[action.Action]map[event.Type]time.Time),
		latch:         l,
		now:           time.Now,
	}
}

// On registers a callback for a specific action and event type
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}

	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger handles the given action and event type.
func (m *Manager) Trigger(act action.Action, evt event.Type) {
	// keypad, written directly to the latch and never debounced
	if code, ok := act.KeyCode(); ok {
		if m.latch == nil {
			return
		}
		switch evt {
		case event.Press, event.Hold:
			if err := m.latch.Press(code); err != nil {
				slog.Warn("Dropped key press", "key", code, "error", err)
			}
		case event.Release:
			m.latch.ReleaseKey(code)
		}
		return
	}

	if m.debounced(act, evt) {
		return
	}

	for _, callback := range m.handlers[act][evt] {
		callback()
	}
}

func (m *Manager) debounced(act action.Action, evt event.Type) bool {
	if evt != event.Press && evt != event.Release {
		return false
	}

	now := m.now()
	if m.lastTriggered[act] == nil {
		m.lastTriggered[act] = make(map[event.Type]time.Time)
	}
	if last, ok := m.lastTriggered[act][evt]; ok && now.Sub(last) < debounceDuration {
		return true
	}
	m.lastTriggered[act][evt] = now
	return false
}
