package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Settings configures the process-wide speaker.
type Settings struct {
	Volume float64 // 0.0 - 1.0
	Music  bool
}

// Player receives fire-and-forget audio requests from the game.
type Player interface {
	Play(s Sound)
	PlayMusic()
	StopMusic()
	ToggleMute() bool
	Muted() bool
}

// process-wide audio state
var (
	mu          sync.Mutex
	initialized bool
	muted       bool
	settings    Settings
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
)

// Init opens the speaker. Without an output device it returns an error
// and every later call stays silent.
func Init(s Settings) error {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	settings = s
	mixer = &beep.Mixer{}
	master = &effects.Volume{Streamer: mixer, Base: 2, Silent: muted}
	speaker.Play(master)
	initialized = true
	return nil
}

// Close stops all sound and releases the speaker.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if !initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	mixer = nil
	master = nil
	music = nil
	initialized = false
}

// Ready reports whether the speaker is open.
func Ready() bool {
	mu.Lock()
	defer mu.Unlock()
	return initialized
}

// ToggleMute flips the mute state and returns the new value.
func ToggleMute() bool {
	mu.Lock()
	defer mu.Unlock()

	muted = !muted
	if initialized {
		speaker.Lock()
		master.Silent = muted
		speaker.Unlock()
	}
	return muted
}

// Muted reports the current mute state.
func Muted() bool {
	mu.Lock()
	defer mu.Unlock()
	return muted
}

// Speaker plays through the process-wide speaker.
type Speaker struct{}

// Play mixes a one-shot effect into the output.
func (Speaker) Play(s Sound) {
	mu.Lock()
	defer mu.Unlock()

	if !initialized || muted {
		return
	}
	st := Effect(s, settings.Volume, sampleRate)
	if st == nil {
		return
	}
	speaker.Lock()
	mixer.Add(st)
	speaker.Unlock()
}

// PlayMusic starts the background track, or resumes it.
func (Speaker) PlayMusic() {
	mu.Lock()
	defer mu.Unlock()

	if !initialized || !settings.Music {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if music != nil {
		music.Paused = false
		return
	}
	music = &beep.Ctrl{Streamer: newVolume(NewMusic(sampleRate), settings.Volume*0.25)}
	mixer.Add(music)
}

// StopMusic pauses the background track.
func (Speaker) StopMusic() {
	mu.Lock()
	defer mu.Unlock()

	if !initialized || music == nil {
		return
	}
	speaker.Lock()
	music.Paused = true
	speaker.Unlock()
}

// ToggleMute flips the process-wide mute state.
func (Speaker) ToggleMute() bool { return ToggleMute() }

// Muted reports the process-wide mute state.
func (Speaker) Muted() bool { return Muted() }

// Silent discards every request. Remote sessions use it; its mute flag
// is per value so one remote player never mutes another.
type Silent struct {
	muted bool
}

func (*Silent) Play(Sound) {}
func (*Silent) PlayMusic() {}
func (*Silent) StopMusic() {}

func (s *Silent) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

func (s *Silent) Muted() bool { return s.muted }
