//go:build !sdl2

package sdl2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/video"
)

func TestStubReportsUnavailable(t *testing.T) {
	var b backend.Backend = New()

	assert.ErrorIs(t, b.Init(backend.BackendConfig{}), ErrUnavailable)
	_, err := b.Update(video.NewFrameBuffer())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, b.Cleanup())
}
