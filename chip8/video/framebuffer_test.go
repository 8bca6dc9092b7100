package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromPixels(t *testing.T) {
	pixels := make([]byte, Width*Height)
	pixels[0] = 1
	pixels[Width+3] = 7
	pixels[len(pixels)-1] = 1

	fb := FromPixels(pixels)
	assert.Equal(t, byte(1), fb.GetPixel(0, 0))
	assert.Equal(t, byte(1), fb.GetPixel(3, 1), "non-zero is normalised")
	assert.Equal(t, byte(1), fb.GetPixel(Width-1, Height-1))
	assert.Equal(t, 3, fb.LitCount())

	pixels[1] = 1
	assert.Equal(t, byte(0), fb.GetPixel(1, 0), "input is copied")
}

func TestGetPixel_OutOfRange(t *testing.T) {
	fb := NewFrameBuffer()
	fb.SetPixel(Width, 0, true)
	fb.SetPixel(-1, 0, true)

	assert.Equal(t, byte(0), fb.GetPixel(Width, 0))
	assert.Equal(t, byte(0), fb.GetPixel(0, Height))
	assert.Equal(t, byte(0), fb.GetPixel(-1, -1))
	assert.Equal(t, 0, fb.LitCount())
}

func TestRow(t *testing.T) {
	fb := NewFrameBuffer()
	fb.SetPixel(0, 2, true)
	fb.SetPixel(Width-1, 2, true)

	assert.Equal(t, uint64(1<<63|1), fb.Row(2))
	assert.Equal(t, uint64(0), fb.Row(0))
	assert.Equal(t, uint64(0), fb.Row(Height))
}

func TestToSlice(t *testing.T) {
	fb := NewFrameBuffer()
	fb.SetPixel(1, 0, true)

	colors := fb.ToSlice()
	assert.Len(t, colors, Width*Height)
	assert.Equal(t, uint32(OffColor), colors[0])
	assert.Equal(t, uint32(OnColor), colors[1])
}

func TestEqual(t *testing.T) {
	a := NewFrameBuffer()
	b := NewFrameBuffer()
	assert.True(t, a.Equal(b))

	b.SetPixel(5, 5, true)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}
