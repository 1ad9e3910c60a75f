// Package config provides YAML-based configuration loading for Math Racer.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/math-racer/internal/race"
)

// RacerConfig contains all tunable configuration for the game.
type RacerConfig struct {
	Timing    TimingConfig    `yaml:"timing"`
	Descent   DescentConfig   `yaml:"descent"`
	Generator GeneratorConfig `yaml:"generator"`
	Audio     AudioConfig     `yaml:"audio"`
}

// TimingConfig defines round timing in milliseconds.
type TimingConfig struct {
	AnswerDelayMs   int `yaml:"answer_delay_ms"`   // problem shown alone before options fall
	CorrectHoldMs   int `yaml:"correct_hold_ms"`   // green flash before the next round
	IncorrectHoldMs int `yaml:"incorrect_hold_ms"` // red flash before game over
}

// DescentConfig defines the answer row's travel, in percent of road height.
type DescentConfig struct {
	Start     float64 `yaml:"start"`
	Threshold float64 `yaml:"threshold"`
	Speed     float64 `yaml:"speed"` // percent per tick; descent time follows --fps
}

// GeneratorConfig defines the addend range for problems.
type GeneratorConfig struct {
	MinAddend int `yaml:"min_addend"`
	MaxAddend int `yaml:"max_addend"`
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 - 1.0
	Music        bool    `yaml:"music"`
}

// Validation errors.
var (
	ErrDescentSpeed  = errors.New("descent speed must be positive")
	ErrNotFinite     = errors.New("descent values must be finite")
	ErrDescentRange  = errors.New("descent threshold must be above start")
	ErrNegativeDelay = errors.New("timing values must not be negative")
	ErrAddendRange   = errors.New("addend range is invalid")
	ErrVolume        = errors.New("master volume must be within [0, 1]")
)

// Validate checks the configuration for values the game cannot run with.
func (c RacerConfig) Validate() error {
	for _, v := range []float64{c.Descent.Start, c.Descent.Threshold, c.Descent.Speed} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("config: %w: start %v, threshold %v, speed %v",
				ErrNotFinite, c.Descent.Start, c.Descent.Threshold, c.Descent.Speed)
		}
	}
	if c.Descent.Speed <= 0 {
		return fmt.Errorf("config: %w: %v", ErrDescentSpeed, c.Descent.Speed)
	}
	if c.Descent.Threshold <= c.Descent.Start {
		return fmt.Errorf("config: %w: start %v, threshold %v", ErrDescentRange, c.Descent.Start, c.Descent.Threshold)
	}
	if c.Timing.AnswerDelayMs < 0 || c.Timing.CorrectHoldMs < 0 || c.Timing.IncorrectHoldMs < 0 {
		return fmt.Errorf("config: %w", ErrNegativeDelay)
	}
	if c.Generator.MinAddend < 1 || c.Generator.MaxAddend < c.Generator.MinAddend {
		return fmt.Errorf("config: %w: [%d, %d]", ErrAddendRange, c.Generator.MinAddend, c.Generator.MaxAddend)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("config: %w: %v", ErrVolume, c.Audio.MasterVolume)
	}
	return nil
}

// Params converts the configuration to session parameters for a driver
// running at tickRate ticks per second.
func (c RacerConfig) Params(tickRate int) race.Params {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return race.Params{
		DescentStart:       c.Descent.Start,
		ArrivalThreshold:   c.Descent.Threshold,
		DescentSpeed:       c.Descent.Speed,
		AnswerDelayTicks:   race.TicksFor(ms(c.Timing.AnswerDelayMs), tickRate),
		CorrectHoldTicks:   race.TicksFor(ms(c.Timing.CorrectHoldMs), tickRate),
		IncorrectHoldTicks: race.TicksFor(ms(c.Timing.IncorrectHoldMs), tickRate),
		MinAddend:          c.Generator.MinAddend,
		MaxAddend:          c.Generator.MaxAddend,
	}
}
