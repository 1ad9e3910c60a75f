package race

import "math/rand"

// OptionCount is the number of answer options per round, one per lane.
const OptionCount = LaneCount

const (
	maxDistractorOffset = 5
	// maxDistractorDraws bounds the random draw loop. Any positive answer
	// admits at least five distinct distractors, so the deterministic fill
	// below only runs if the generator is handed a broken source.
	maxDistractorDraws = 64
)

// AnswerOption is one value falling down a lane.
type AnswerOption struct {
	Value     int
	IsCorrect bool
}

// GenerateOptions returns OptionCount options for a positive correct
// answer: the answer itself plus distinct distractors within ±5 of it,
// shuffled so the correct lane is uniformly random.
func GenerateOptions(rng *rand.Rand, correct int) []AnswerOption {
	options := make([]AnswerOption, 0, OptionCount)
	options = append(options, AnswerOption{Value: correct, IsCorrect: true})

	for draws := 0; len(options) < OptionCount && draws < maxDistractorDraws; draws++ {
		offset := rng.Intn(maxDistractorOffset) + 1
		sign := 1
		if rng.Float64() >= 0.5 {
			sign = -1
		}

		candidate := correct + offset*sign
		if candidate <= 0 {
			candidate = correct + offset
		}
		if candidate == correct {
			candidate++
		}
		if !hasValue(options, candidate) {
			options = append(options, AnswerOption{Value: candidate, IsCorrect: false})
		}
	}

	for candidate := correct + 1; len(options) < OptionCount; candidate++ {
		if candidate > 0 && !hasValue(options, candidate) {
			options = append(options, AnswerOption{Value: candidate, IsCorrect: false})
		}
	}

	// Fisher-Yates
	for i := len(options) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		options[i], options[j] = options[j], options[i]
	}

	return options
}

func hasValue(options []AnswerOption, v int) bool {
	for _, o := range options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// CorrectIndex returns the position of the correct option, or -1.
func CorrectIndex(options []AnswerOption) int {
	for i, o := range options {
		if o.IsCorrect {
			return i
		}
	}
	return -1
}
