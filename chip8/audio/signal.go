package audio

// Signal is the tone state requested by the sound timer on a timer tick.
type Signal int

const (
	// SignalNone means no timer tick happened, the tone state is unchanged.
	SignalNone Signal = iota
	// SignalStart requests the tone to play (sound timer is non-zero).
	SignalStart
	// SignalStop requests the tone to stop (sound timer reached zero).
	SignalStop
)

func (s Signal) String() string {
	switch s {
	case SignalStart:
		return "start"
	case SignalStop:
		return "stop"
	default:
		return "none"
	}
}
