package race

import (
	"math/rand"
	"testing"
)

func checkOptions(t *testing.T, correct int, options []AnswerOption) {
	t.Helper()

	if len(options) != OptionCount {
		t.Fatalf("correct=%d: got %d options, want %d", correct, len(options), OptionCount)
	}

	correctCount := 0
	values := make(map[int]bool)
	for _, o := range options {
		if o.IsCorrect {
			correctCount++
			if o.Value != correct {
				t.Errorf("correct=%d: correct option has value %d", correct, o.Value)
			}
		}
		if o.Value <= 0 {
			t.Errorf("correct=%d: non-positive value %d", correct, o.Value)
		}
		if values[o.Value] {
			t.Errorf("correct=%d: duplicate value %d in %v", correct, o.Value, options)
		}
		values[o.Value] = true
	}
	if correctCount != 1 {
		t.Errorf("correct=%d: %d correct options, want 1", correct, correctCount)
	}
}

func TestGenerateOptionsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for correct := 1; correct <= 20; correct++ {
			options := GenerateOptions(rng, correct)
			checkOptions(t, correct, options)

			for _, o := range options {
				d := o.Value - correct
				if d < 0 {
					d = -d
				}
				if d > maxDistractorOffset+1 {
					t.Errorf("correct=%d: distractor %d too far away", correct, o.Value)
				}
			}
		}
	}
}

func TestGenerateOptionsSeededDeterminism(t *testing.T) {
	a := GenerateOptions(rand.New(rand.NewSource(99)), 12)
	b := GenerateOptions(rand.New(rand.NewSource(99)), 12)

	checkOptions(t, 12, a)
	checkOptions(t, 12, b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced %v and %v", a, b)
		}
	}
}

func TestGenerateOptionsShuffle(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	counts := make([]int, OptionCount)

	const rounds = 3000
	for i := 0; i < rounds; i++ {
		idx := CorrectIndex(GenerateOptions(rng, 8))
		if idx < 0 {
			t.Fatal("no correct option")
		}
		counts[idx]++
	}

	for lane, n := range counts {
		if n < 800 || n > 1200 {
			t.Errorf("correct option landed in lane %d %d/%d times", lane, n, rounds)
		}
	}
}

// zeroSource always returns 0, so every draw yields the same candidate.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

func TestGenerateOptionsTerminatesOnStuckSource(t *testing.T) {
	options := GenerateOptions(rand.New(zeroSource{}), 4)
	checkOptions(t, 4, options)

	want := map[int]bool{4: true, 5: true, 6: true}
	for _, o := range options {
		if !want[o.Value] {
			t.Errorf("unexpected value %d in %v", o.Value, options)
		}
	}
}

func TestCorrectIndex(t *testing.T) {
	options := []AnswerOption{{5, false}, {7, true}, {9, false}}
	if got := CorrectIndex(options); got != 1 {
		t.Errorf("CorrectIndex() = %d, want 1", got)
	}
	if got := CorrectIndex(nil); got != -1 {
		t.Errorf("CorrectIndex(nil) = %d, want -1", got)
	}
}
