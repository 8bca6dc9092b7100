package audio

const (
	// SampleRate of the generated tone in Hz
	SampleRate = 44100
	// ToneFrequency of the square wave beep in Hz
	ToneFrequency = 440
	// ToneVolume is the square wave amplitude (int16 range)
	ToneVolume = 3000
	// ToneSeconds covers the longest beep the 8 bit sound timer can request (255/60 s)
	ToneSeconds = 5
)

// SquareWave returns ToneSeconds of a signed 16 bit little endian mono square
// wave at ToneFrequency.
func SquareWave() []byte {
	period := SampleRate / ToneFrequency
	samples := SampleRate * ToneSeconds
	buf := make([]byte, samples*2)
	for i := 0; i < samples; i++ {
		sample := int16(ToneVolume)
		if (i % period) >= period/2 {
			sample = -ToneVolume
		}
		buf[i*2] = byte(uint16(sample))
		buf[i*2+1] = byte(uint16(sample) >> 8)
	}
	return buf
}
