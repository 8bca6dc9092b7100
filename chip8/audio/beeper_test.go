package audio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDevice struct {
	plays, pauses int
	failPlay      bool
}

func (f *fakeDevice) Play() error {
	f.plays++
	if f.failPlay {
		return errors.New("no device")
	}
	return nil
}

func (f *fakeDevice) Pause() error {
	f.pauses++
	return nil
}

func (f *fakeDevice) Close() error { return nil }

func TestBeeper_Idempotent(t *testing.T) {
	dev := &fakeDevice{}
	b := NewBeeper(dev)

	b.Start()
	b.Start()
	b.Start()
	assert.True(t, b.Playing())
	assert.Equal(t, 1, dev.plays, "repeated start must not replay the tone")

	b.Stop()
	b.Stop()
	assert.False(t, b.Playing())
	assert.Equal(t, 1, dev.pauses, "repeated stop must not pause twice")

	starts, stops := b.Transitions()
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, stops)
}

func TestBeeper_StopWhenIdle(t *testing.T) {
	dev := &fakeDevice{}
	b := NewBeeper(dev)

	b.Stop()
	assert.False(t, b.Playing())
	assert.Zero(t, dev.pauses)
}

func TestBeeper_DeviceErrorKeepsState(t *testing.T) {
	b := NewBeeper(&fakeDevice{failPlay: true})
	b.Start()
	assert.True(t, b.Playing())
}

func TestDispatch(t *testing.T) {
	b := NewBeeper(nil)

	Dispatch(b, SignalNone)
	assert.False(t, b.Playing())

	Dispatch(b, SignalStart)
	assert.True(t, b.Playing())

	Dispatch(b, SignalNone)
	assert.True(t, b.Playing(), "no tick keeps the current state")

	Dispatch(b, SignalStop)
	assert.False(t, b.Playing())

	assert.NotPanics(t, func() { Dispatch(nil, SignalStart) })
}

func TestSquareWave(t *testing.T) {
	wave := SquareWave()
	assert.Len(t, wave, SampleRate*ToneSeconds*2)

	first := int16(uint16(wave[0]) | uint16(wave[1])<<8)
	assert.Equal(t, int16(ToneVolume), first)

	half := SampleRate / ToneFrequency / 2
	second := int16(uint16(wave[half*2]) | uint16(wave[half*2+1])<<8)
	assert.Equal(t, int16(-ToneVolume), second)
}

func TestSignal_String(t *testing.T) {
	assert.Equal(t, "start", SignalStart.String())
	assert.Equal(t, "stop", SignalStop.String())
	assert.Equal(t, "none", SignalNone.String())
}
