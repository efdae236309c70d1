package adaptive

import (
	"math"
	"math/rand"
	"testing"
)

func TestCrisisTriggerFrequency(t *testing.T) {
	trigger := NewCrisisTrigger(DefaultCrisisProbability, rand.New(rand.NewSource(42)))

	const draws = 100000
	triggered := 0
	for i := 0; i < draws; i++ {
		if trigger.Decide() {
			triggered++
		}
	}

	fraction := float64(triggered) / float64(draws)
	if math.Abs(fraction-DefaultCrisisProbability) > 0.01 {
		t.Errorf("Triggered fraction %.4f outside 0.20 +/- 0.01 over %d draws", fraction, draws)
	}
}

func TestCrisisTriggerReproducible(t *testing.T) {
	first := NewCrisisTrigger(DefaultCrisisProbability, rand.New(rand.NewSource(7)))
	second := NewCrisisTrigger(DefaultCrisisProbability, rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		a, b := first.Decide(), second.Decide()
		if a != b {
			t.Fatalf("Draw %d diverged for identical seeds: %v vs %v", i, a, b)
		}
	}
}

func TestCrisisTriggerForcedOutcomes(t *testing.T) {
	always := NewCrisisTrigger(1.0, rand.New(rand.NewSource(1)))
	never := NewCrisisTrigger(0.0, rand.New(rand.NewSource(1)))

	for i := 0; i < 100; i++ {
		if !always.Decide() {
			t.Fatal("Probability 1.0 must always trigger")
		}
		if never.Decide() {
			t.Fatal("Probability 0.0 must never trigger")
		}
	}
}

func TestCrisisFeedbackSelection(t *testing.T) {
	trigger := NewCrisisTrigger(DefaultCrisisProbability, nil)

	if trigger.Feedback(true) != CrisisFeedback {
		t.Error("Triggered attempt must select the crisis-education message")
	}
	if trigger.Feedback(false) != PositiveFeedback {
		t.Error("Non-triggered attempt must select the affirmation message")
	}
}
