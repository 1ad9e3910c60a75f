package config

import (
	_ "embed"

	"github.com/vovakirdan/math-racer/internal/race"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the hardcoded default configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Timing: TimingConfig{
			AnswerDelayMs:   int(race.DefaultAnswerDelay.Milliseconds()),
			CorrectHoldMs:   int(race.DefaultCorrectHold.Milliseconds()),
			IncorrectHoldMs: int(race.DefaultIncorrectHold.Milliseconds()),
		},
		Descent: DescentConfig{
			Start:     race.DefaultDescentStart,
			Threshold: race.DefaultArrivalThreshold,
			Speed:     race.DefaultDescentSpeed,
		},
		Generator: GeneratorConfig{
			MinAddend: race.DefaultMinAddend,
			MaxAddend: race.DefaultMaxAddend,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.6,
			Music:        true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultRacerYAML))
	copy(out, defaultRacerYAML)
	return out
}
