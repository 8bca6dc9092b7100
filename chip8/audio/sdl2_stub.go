//go:build !sdl2

package audio

// SDLDevice is unavailable in builds without the sdl2 tag.
type SDLDevice struct{}

// NewSDLDevice always fails with ErrNoDevice without the sdl2 build tag.
func NewSDLDevice() (*SDLDevice, error) {
	return nil, ErrNoDevice
}

func (d *SDLDevice) Play() error  { return ErrNoDevice }
func (d *SDLDevice) Pause() error { return ErrNoDevice }
func (d *SDLDevice) Close() error { return nil }
