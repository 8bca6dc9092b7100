package action

import "fmt"

// Action represents input actions that can be performed in the emulator
type Action int

const (
	// CHIP-8 hexadecimal keypad, Key0..KeyF map to key codes 0x0..0xF
	Key0 Action = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF

	// Emulator features
	EmulatorDebugToggle
	EmulatorSnapshot
	EmulatorPauseToggle
	EmulatorStep
	EmulatorReset
	EmulatorQuit

	// Debug controls
	DebugLogLevelIncrease
	DebugLogLevelDecrease
)

// Category groups actions by how backends should treat them.
type Category int

const (
	// CategoryGameInput actions are keypad keys with press/hold/release tracking.
	CategoryGameInput Category = iota
	// CategoryEmulator actions control the emulator and are one-shot presses.
	CategoryEmulator
	// CategoryDebug actions only affect debug displays.
	CategoryDebug
)

// Info describes an action.
type Info struct {
	Category    Category
	Description string
}

// IsKeypad reports whether the action is one of the 16 keypad keys.
func (a Action) IsKeypad() bool {
	return a >= Key0 && a <= KeyF
}

// KeyCode returns the keypad code (0x0..0xF) for a keypad action.
func (a Action) KeyCode() (uint8, bool) {
	if !a.IsKeypad() {
		return 0, false
	}
	return uint8(a - Key0), true
}

// FromKeyCode returns the keypad action for a key code.
func FromKeyCode(code uint8) (Action, bool) {
	if code > 0xF {
		return 0, false
	}
	return Key0 + Action(code), true
}

var infos = map[Action]Info{
	EmulatorDebugToggle:   {CategoryDebug, "Toggle debug view"},
	EmulatorSnapshot:      {CategoryEmulator, "Save snapshot"},
	EmulatorPauseToggle:   {CategoryEmulator, "Pause/resume"},
	EmulatorStep:          {CategoryEmulator, "Step instruction"},
	EmulatorReset:         {CategoryEmulator, "Reset"},
	EmulatorQuit:          {CategoryEmulator, "Quit"},
	DebugLogLevelIncrease: {CategoryDebug, "Increase log level"},
	DebugLogLevelDecrease: {CategoryDebug, "Decrease log level"},
}

// GetInfo returns the metadata for an action.
func GetInfo(a Action) Info {
	if code, ok := a.KeyCode(); ok {
		return Info{Category: CategoryGameInput, Description: fmt.Sprintf("Key %X", code)}
	}
	if info, ok := infos[a]; ok {
		return info
	}
	return Info{Category: CategoryEmulator, Description: "Unknown"}
}
