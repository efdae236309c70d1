package adaptive

import "strconv"

// Scorer maps a student's financial decision inputs for one quest to an
// integer score in [0, 100]. Pure computation, no side effects.
type Scorer struct {
	config *ScoringConfig
}

// NewScorer creates a scorer. A nil config uses the default rubric.
func NewScorer(config *ScoringConfig) *Scorer {
	if config == nil {
		config = DefaultScoringConfig()
	}
	return &Scorer{config: config}
}

// Score computes the score for one submission. Negative amounts are treated
// as 0 so a malformed submission degrades instead of failing; an unrecognized
// risk profile simply earns no bonus. Zero income yields a zero savings rate
// regardless of savings.
func (s *Scorer) Score(income, savings float64, risk RiskProfile) int {
	if income < 0 {
		income = 0
	}
	if savings < 0 {
		savings = 0
	}

	savingsRate := 0.0
	if income > 0 {
		savingsRate = (savings / income) * 100
	}

	score := s.config.BaseScore
	if savingsRate >= s.config.HighSavingsRate {
		score += s.config.HighSavingsBonus
	} else if savingsRate >= s.config.MidSavingsRate {
		score += s.config.MidSavingsBonus
	}

	score += s.config.RiskBonuses[risk]

	if score > s.config.MaxScore {
		score = s.config.MaxScore
	}
	return score
}

// SavingsRate exposes the primary scoring signal for display alongside the
// attempt. Mirrors the rate used by Score.
func (s *Scorer) SavingsRate(income, savings float64) float64 {
	if income <= 0 || savings < 0 {
		return 0
	}
	return (savings / income) * 100
}

// ParseAmount coerces a client-supplied amount to a non-negative float64.
// Missing, non-numeric or negative input becomes 0 — scoring stays forgiving
// for beginners instead of rejecting the submission.
func ParseAmount(v interface{}) float64 {
	var amount float64
	switch val := v.(type) {
	case float64:
		amount = val
	case int:
		amount = float64(val)
	case string:
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		amount = parsed
	default:
		return 0
	}
	if amount < 0 {
		return 0
	}
	return amount
}
