package timing

import "time"

// Limiter controls frame rate timing for emulation.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

// TargetFPS is the display refresh rate, which is also the timer rate.
const TargetFPS = 60

// FrameDuration returns the target duration of a single frame.
func FrameDuration() time.Duration {
	return time.Second / TargetFPS
}

// New returns the limiter registered under name: "adaptive", "ticker" or
// "none". Unknown names fall back to the adaptive limiter.
func New(name string) Limiter {
	switch name {
	case "ticker":
		return NewTickerLimiter()
	case "none":
		return NewNoOpLimiter()
	default:
		return NewAdaptiveLimiter()
	}
}
