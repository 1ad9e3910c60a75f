package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const musicStep = 180 * time.Millisecond

// musicPattern is a looping arpeggio over a I-vi-IV-V progression in C.
var musicPattern = []float64{
	261.63, 329.63, 392.00, 329.63,
	220.00, 261.63, 329.63, 261.63,
	174.61, 220.00, 261.63, 220.00,
	196.00, 246.94, 293.66, 246.94,
}

// NewMusic returns an endless background track. Notes are produced one
// at a time so the stream never ends on its own; pause or drop it to stop.
func NewMusic(rate beep.SampleRate) beep.Streamer {
	i := 0
	return beep.Iterate(func() beep.Streamer {
		freq := musicPattern[i%len(musicPattern)]
		i++
		return tone(note{freq, musicStep}, WaveTriangle, rate)
	})
}
