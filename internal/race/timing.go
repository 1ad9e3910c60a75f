package race

import "time"

// Params holds the tunable geometry and timing of a session.
// Durations are expressed in ticks of the driving loop.
type Params struct {
	// Descent runs from DescentStart to ArrivalThreshold, in percent of the
	// playfield height, moving DescentSpeed per tick.
	DescentStart     float64
	ArrivalThreshold float64
	DescentSpeed     float64

	AnswerDelayTicks   int // problem shown alone before options start falling
	CorrectHoldTicks   int // correct flash before the next round
	IncorrectHoldTicks int // incorrect flash before game over

	MinAddend int
	MaxAddend int
}

// Default timing values, before conversion to ticks.
const (
	DefaultTickRate         = 60
	DefaultDescentStart     = -20.0
	DefaultArrivalThreshold = 80.0
	DefaultDescentSpeed     = 0.5
	DefaultAnswerDelay      = 4000 * time.Millisecond
	DefaultCorrectHold      = 300 * time.Millisecond
	DefaultIncorrectHold    = 500 * time.Millisecond
)

// DefaultParams returns the stock tuning for a driver running at tickRate.
func DefaultParams(tickRate int) Params {
	return Params{
		DescentStart:       DefaultDescentStart,
		ArrivalThreshold:   DefaultArrivalThreshold,
		DescentSpeed:       DefaultDescentSpeed,
		AnswerDelayTicks:   TicksFor(DefaultAnswerDelay, tickRate),
		CorrectHoldTicks:   TicksFor(DefaultCorrectHold, tickRate),
		IncorrectHoldTicks: TicksFor(DefaultIncorrectHold, tickRate),
		MinAddend:          DefaultMinAddend,
		MaxAddend:          DefaultMaxAddend,
	}
}

// TicksFor converts a wall-clock duration to whole ticks, rounding up.
// The result is at least 1 so a timer always fires on a later tick.
func TicksFor(d time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	ticks := int((d*time.Duration(tickRate) + time.Second - 1) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// DescentTicks returns how many ticks a full descent takes.
func (p Params) DescentTicks() int {
	if p.DescentSpeed <= 0 {
		return 0
	}
	span := p.ArrivalThreshold - p.DescentStart
	n := int(span / p.DescentSpeed)
	if float64(n)*p.DescentSpeed < span {
		n++
	}
	return n
}
