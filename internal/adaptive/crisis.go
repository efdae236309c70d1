package adaptive

import (
	"math/rand"
	"sync"
	"time"
)

// Crisis feedback content. Selection is the contract (triggered picks the
// crisis-education message, otherwise the affirmation); wording is content.
const (
	CrisisFeedback   = "A financial crisis has emerged! Review the educational materials to understand how to handle unexpected situations."
	PositiveFeedback = "Great job! Your financial decisions demonstrate solid money management skills."
)

// DefaultCrisisProbability is the chance a crisis narrative fires on any
// attempt, independent of score, risk profile or quest.
const DefaultCrisisProbability = 0.2

// CrisisTrigger decides per attempt whether a crisis scenario fires. The
// random source is injected so tests can seed it; the decision is drawn once
// per attempt and carried with the attempt record, never re-rolled on a
// persistence retry.
type CrisisTrigger struct {
	probability float64

	// Guards the generator: one trigger is shared by concurrent submissions
	// and rand.Rand is not safe for concurrent use.
	mu   sync.Mutex
	rand *rand.Rand
}

// NewCrisisTrigger creates a trigger with the given probability. A nil source
// falls back to a time-seeded generator.
func NewCrisisTrigger(probability float64, source *rand.Rand) *CrisisTrigger {
	if source == nil {
		source = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &CrisisTrigger{
		probability: probability,
		rand:        source,
	}
}

// Decide draws one uniform sample and reports whether a crisis fires.
// Cannot fail.
func (t *CrisisTrigger) Decide() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rand.Float64() < t.probability
}

// Feedback returns the narrative feedback class for a decided attempt.
func (t *CrisisTrigger) Feedback(triggered bool) string {
	if triggered {
		return CrisisFeedback
	}
	return PositiveFeedback
}
