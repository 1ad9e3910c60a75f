// Package audio synthesizes the game's sound cues and background music and
// owns the process-wide speaker and mute state.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Sound identifies a one-shot effect.
type Sound int

const (
	SoundMove Sound = iota
	SoundCorrect
	SoundIncorrect
	SoundGameOver
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundMove:
		return "move"
	case SoundCorrect:
		return "correct"
	case SoundIncorrect:
		return "incorrect"
	case SoundGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a finite tone of the given frequency and length.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.position >= start {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type note struct {
	freq float64
	dur  time.Duration
}

func tone(n note, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(n.freq, n.dur, wave, rate)
	return NewEnvelope(osc, n.dur, 5*time.Millisecond, n.dur/3, rate)
}

func melody(notes []note, wave WaveType, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(n, wave, rate))
	}
	return beep.Seq(parts...)
}

// Effect returns a finite streamer for the sound at the given volume.
func Effect(s Sound, vol float64, rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundMove:
		return newVolume(tone(note{660, 60 * time.Millisecond}, WaveTriangle, rate), vol*0.5)

	case SoundCorrect:
		// E5 then A5
		return newVolume(melody([]note{
			{659.25, 90 * time.Millisecond},
			{880.00, 140 * time.Millisecond},
		}, WaveSquare, rate), vol*0.35)

	case SoundIncorrect:
		low := tone(note{110, 300 * time.Millisecond}, WaveSquare, rate)
		lower := tone(note{104, 300 * time.Millisecond}, WaveSquare, rate)
		return newVolume(beep.Mix(low, lower), vol*0.3)

	case SoundGameOver:
		// G4 E4 C4
		return newVolume(melody([]note{
			{392.00, 180 * time.Millisecond},
			{329.63, 180 * time.Millisecond},
			{261.63, 360 * time.Millisecond},
		}, WaveTriangle, rate), vol*0.5)

	default:
		return nil
	}
}
