//go:build sdl2

package audio

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLDevice plays a looping square wave on an SDL2 audio device.
type SDLDevice struct {
	id   sdl.AudioDeviceID
	wave []byte
}

// NewSDLDevice initialises the SDL audio subsystem and opens the default
// output device.
func NewSDLDevice() (*SDLDevice, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}

	spec := &sdl.AudioSpec{
		Freq:     SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  1024,
	}

	id, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}

	return &SDLDevice{id: id, wave: SquareWave()}, nil
}

func (d *SDLDevice) Play() error {
	sdl.ClearQueuedAudio(d.id)
	if err := sdl.QueueAudio(d.id, d.wave); err != nil {
		return err
	}
	sdl.PauseAudioDevice(d.id, false)
	return nil
}

func (d *SDLDevice) Pause() error {
	sdl.PauseAudioDevice(d.id, true)
	sdl.ClearQueuedAudio(d.id)
	return nil
}

func (d *SDLDevice) Close() error {
	sdl.CloseAudioDevice(d.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
