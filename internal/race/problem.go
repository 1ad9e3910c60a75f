// Package race implements the Math Racer session loop: arithmetic problem
// generation, answer options, descent timing, lane input, and scoring.
//
// The package has no rendering or timing dependency. A driver calls
// Session.Advance once per tick and forwards lane commands between ticks;
// everything observable leaves through Snapshot and EventSink.
package race

import (
	"fmt"
	"math/rand"
)

// Default addend range for generated problems.
const (
	DefaultMinAddend = 1
	DefaultMaxAddend = 10
)

// OperatorAdd is the only operator problems use.
const OperatorAdd = '+'

// Problem is a single addition question.
type Problem struct {
	Num1     int
	Num2     int
	Operator rune
	Answer   int
}

// String renders the question the way the HUD shows it.
func (p Problem) String() string {
	return fmt.Sprintf("%d %c %d = ?", p.Num1, p.Operator, p.Num2)
}

// GenerateProblem draws both addends uniformly from [minAddend, maxAddend].
// An empty or inverted range falls back to the defaults.
func GenerateProblem(rng *rand.Rand, minAddend, maxAddend int) Problem {
	if minAddend < 1 || maxAddend < minAddend {
		minAddend, maxAddend = DefaultMinAddend, DefaultMaxAddend
	}
	span := maxAddend - minAddend + 1
	num1 := minAddend + rng.Intn(span)
	num2 := minAddend + rng.Intn(span)
	return Problem{
		Num1:     num1,
		Num2:     num2,
		Operator: OperatorAdd,
		Answer:   num1 + num2,
	}
}
