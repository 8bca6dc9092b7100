package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyCode(t *testing.T) {
	for code := uint8(0); code <= 0xF; code++ {
		act, ok := FromKeyCode(code)
		assert.True(t, ok)
		assert.True(t, act.IsKeypad())

		back, ok := act.KeyCode()
		assert.True(t, ok)
		assert.Equal(t, code, back)
	}

	_, ok := FromKeyCode(0x10)
	assert.False(t, ok)

	_, ok = EmulatorQuit.KeyCode()
	assert.False(t, ok)
}

func TestGetInfo(t *testing.T) {
	assert.Equal(t, CategoryGameInput, GetInfo(KeyA).Category)
	assert.Equal(t, "Key A", GetInfo(KeyA).Description)
	assert.Equal(t, CategoryEmulator, GetInfo(EmulatorPauseToggle).Category)
	assert.Equal(t, CategoryDebug, GetInfo(DebugLogLevelIncrease).Category)
	assert.Equal(t, "Unknown", GetInfo(Action(999)).Description)
}
