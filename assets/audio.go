package assets

import (
	"encoding/binary"
	"math"
)

// Tone describes a synthesized sound effect. Frequency sweeps linearly from
// Freq to EndFreq over Duration seconds.
type Tone struct {
	Freq     float64
	EndFreq  float64
	Duration float64
	Square   bool
	Volume   float64
}

// Synthesize renders a tone as 16-bit little-endian stereo PCM, the format
// ebiten's audio context plays directly.
func Synthesize(t Tone, sampleRate int) []byte {
	n := int(t.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	phase := 0.0
	// Short linear attack and release keep the edges from clicking.
	fade := sampleRate / 200
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Freq + (t.EndFreq-t.Freq)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase)
		if t.Square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}

		env := 1.0
		if i < fade {
			env = float64(i) / float64(fade)
		} else if n-i < fade {
			env = float64(n-i) / float64(fade)
		}

		s := int16(v * env * t.Volume * math.MaxInt16 * 0.8)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
