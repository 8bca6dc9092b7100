package audio

import (
	"errors"
	"log/slog"
)

// ErrNoDevice is returned when no audio output device can be opened.
var ErrNoDevice = errors.New("no audio device available")

// Sink receives tone requests. Implementations must be idempotent: a Start
// while already playing (or a Stop while stopped) has no side effects.
type Sink interface {
	Start()
	Stop()
	Playing() bool
}

// Device is a tone generator driven by a Beeper, e.g. an SDL audio device.
type Device interface {
	Play() error
	Pause() error
	Close() error
}

// Dispatch forwards a timer signal to the sink.
func Dispatch(sink Sink, signal Signal) {
	if sink == nil {
		return
	}

	switch signal {
	case SignalStart:
		sink.Start()
	case SignalStop:
		sink.Stop()
	}
}

// Beeper is the default Sink. It tracks the playing state, logs transitions
// and optionally drives a tone Device.
type Beeper struct {
	playing bool
	device  Device

	starts int
	stops  int
}

var _ Sink = (*Beeper)(nil)

// NewBeeper returns a Beeper driving the given device, which may be nil.
func NewBeeper(device Device) *Beeper {
	return &Beeper{device: device}
}

func (b *Beeper) Start() {
	if b.playing {
		return
	}
	b.playing = true
	b.starts++
	slog.Debug("Tone started")

	if b.device != nil {
		if err := b.device.Play(); err != nil {
			slog.Warn("Failed to start tone", "error", err)
		}
	}
}

func (b *Beeper) Stop() {
	if !b.playing {
		return
	}
	b.playing = false
	b.stops++
	slog.Debug("Tone stopped")

	if b.device != nil {
		if err := b.device.Pause(); err != nil {
			slog.Warn("Failed to stop tone", "error", err)
		}
	}
}

func (b *Beeper) Playing() bool {
	return b.playing
}

// Transitions returns how many times the tone was actually started and stopped.
func (b *Beeper) Transitions() (starts, stops int) {
	return b.starts, b.stops
}

// Close releases the underlying device, if any.
func (b *Beeper) Close() error {
	if b.device == nil {
		return nil
	}
	return b.device.Close()
}
