package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatch_Empty(t *testing.T) {
	l := NewLatch()
	_, ok := l.Read()
	assert.False(t, ok)
}

func TestLatch_PressRelease(t *testing.T) {
	l := NewLatch()

	require.NoError(t, l.Press(0xA))
	key, ok := l.Read()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xA), key)

	require.NoError(t, l.Press(0x0))
	key, ok = l.Read()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x0), key, "key 0 is a real key, not none")

	l.Release()
	_, ok = l.Read()
	assert.False(t, ok)
}

func TestLatch_InvalidKey(t *testing.T) {
	l := NewLatch()
	require.NoError(t, l.Press(0x3))

	err := l.Press(0x10)
	assert.ErrorIs(t, err, ErrInvalidKeyCode)

	key, ok := l.Read()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x3), key, "failed press keeps the previous key")
}

func TestLatch_ReleaseKey(t *testing.T) {
	l := NewLatch()
	require.NoError(t, l.Press(0x1))
	require.NoError(t, l.Press(0x2))

	l.ReleaseKey(0x1)
	key, ok := l.Read()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x2), key)

	l.ReleaseKey(0x2)
	_, ok = l.Read()
	assert.False(t, ok)
}

func TestLatch_Concurrent(t *testing.T) {
	l := NewLatch()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(k uint8) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = l.Press(k)
				if key, ok := l.Read(); ok {
					assert.LessOrEqual(t, key, uint8(0xF))
				}
				l.Release()
			}
		}(uint8(i))
	}
	wg.Wait()
}
