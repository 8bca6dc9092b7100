package video

const (
	// Width and Height are the CHIP-8 display dimensions in pixels.
	Width  = 64
	Height = 32
)

// Color is a packed 0xRRGGBBAA value.
type Color uint32

const (
	OnColor  Color = 0xFFFFFFFF
	OffColor Color = 0x000000FF
)

// FrameBuffer is a monochrome frame, one byte per pixel holding 0 or 1.
type FrameBuffer struct {
	pixels []byte
}

// NewFrameBuffer creates a blank frame.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{pixels: make([]byte, Width*Height)}
}

// FromPixels wraps a row-major 0/1 pixel slice. Non-zero values are
// normalised to 1 and the slice is copied.
func FromPixels(pixels []byte) *FrameBuffer {
	fb := NewFrameBuffer()
	for i := 0; i < len(pixels) && i < len(fb.pixels); i++ {
		if pixels[i] != 0 {
			fb.pixels[i] = 1
		}
	}
	return fb
}

// GetPixel returns 1 if the pixel at (x, y) is lit, 0 otherwise.
// Out of range coordinates read as 0.
func (fb *FrameBuffer) GetPixel(x, y int) byte {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	return fb.pixels[y*Width+x]
}

func (fb *FrameBuffer) SetPixel(x, y int, on bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	var value byte
	if on {
		value = 1
	}
	fb.pixels[y*Width+x] = value
}

// Pixels returns the underlying 0/1 slice.
func (fb *FrameBuffer) Pixels() []byte {
	return fb.pixels
}

// ToSlice returns the frame as packed colors, for renderers that upload
// textures or write images.
func (fb *FrameBuffer) ToSlice() []uint32 {
	colors := make([]uint32, len(fb.pixels))
	for i, px := range fb.pixels {
		colors[i] = uint32(OffColor)
		if px != 0 {
			colors[i] = uint32(OnColor)
		}
	}
	return colors
}

// Row packs row y into a uint64, leftmost pixel in the most significant bit.
func (fb *FrameBuffer) Row(y int) uint64 {
	if y < 0 || y >= Height {
		return 0
	}
	var row uint64
	for x := 0; x < Width; x++ {
		row = row<<1 | uint64(fb.pixels[y*Width+x])
	}
	return row
}

// LitCount returns the number of lit pixels.
func (fb *FrameBuffer) LitCount() int {
	n := 0
	for _, px := range fb.pixels {
		n += int(px)
	}
	return n
}

// Equal reports whether two frames have the same pixels.
func (fb *FrameBuffer) Equal(other *FrameBuffer) bool {
	if other == nil {
		return false
	}
	for i := range fb.pixels {
		if fb.pixels[i] != other.pixels[i] {
			return false
		}
	}
	return true
}
