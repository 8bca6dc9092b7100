package vm

import (
	"time"

	"github.com/valerio/go-chip8/chip8/audio"
)

// tickTimers decrements the delay and sound timers once if a 60 Hz boundary
// has passed since the last tick. The sound timer is sampled before it is
// decremented, so a value of N keeps the tone on for N ticks.
func (v *VM) tickTimers(now time.Time) audio.Signal {
	if !now.After(v.nextTick) {
		return audio.SignalNone
	}

	if v.delayTimer > 0 {
		v.delayTimer--
	}

	signal := audio.SignalStop
	if v.soundTimer > 0 {
		v.soundTimer--
		signal = audio.SignalStart
	}

	v.nextTick = v.nextTick.Add(TimerPeriod)
	if !v.nextTick.After(now) {
		// fell more than a period behind (first tick, or the driver paused):
		// resync instead of decrementing in a burst
		v.nextTick = now.Add(TimerPeriod)
	}

	return signal
}
